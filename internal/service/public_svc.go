package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
	"vcp_backend_v1_202609/pkg/utils"
)

// ==================== PublicCatalogService 公开只读目录 ====================

// PublicCatalogService 无鉴权的目录浏览
//
// 刻意独立于 ChainResolver：这里只做"父级存在性"的正向行走，
// 不查商户、不过闸门。单独成路径而不是给解析器加旁路开关，
// 避免哪天参数传错把带权限的路径也旁路掉
type PublicCatalogService struct {
	ownerRepo    repository.BusinessOwnerRepository
	commerceRepo repository.CommerceRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	detailRepo   repository.DetailRepository
}

// NewPublicCatalogService 创建公开目录服务
func NewPublicCatalogService(
	ownerRepo repository.BusinessOwnerRepository,
	commerceRepo repository.CommerceRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	detailRepo repository.DetailRepository,
) *PublicCatalogService {
	return &PublicCatalogService{
		ownerRepo:    ownerRepo,
		commerceRepo: commerceRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		detailRepo:   detailRepo,
	}
}

// GetOwner 商户公开信息
func (s *PublicCatalogService) GetOwner(ctx context.Context, id int64) (*dto.PublicOwnerView, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}
	return &dto.PublicOwnerView{
		ID:         owner.ID,
		Name:       owner.Name,
		Adresse:    owner.Adresse,
		Telephone1: owner.Telephone1,
		ImageOwner: utils.EncodeImageBase64(owner.ImageOwner),
	}, nil
}

// GetCommerce 商铺公开信息
func (s *PublicCatalogService) GetCommerce(ctx context.Context, id int64) (*dto.PublicCommerceView, error) {
	commerce, err := s.commerceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if commerce == nil {
		return nil, NewNotFound("commerce")
	}
	return commerceView(commerce), nil
}

// ListCommercesByVille 城市下的商铺列表，图片内联 base64
func (s *PublicCatalogService) ListCommercesByVille(ctx context.Context, villeID int64) ([]dto.PublicCommerceView, error) {
	commerces, err := s.commerceRepo.ListByVille(ctx, villeID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PublicCommerceView, 0, len(commerces))
	for i := range commerces {
		views = append(views, *commerceView(&commerces[i]))
	}
	return views, nil
}

// ListCategories 商铺下的分类列表，图片内联 base64
func (s *PublicCatalogService) ListCategories(ctx context.Context, commerceID int64) ([]dto.PublicCategoryView, error) {
	commerce, err := s.commerceRepo.GetByID(ctx, commerceID)
	if err != nil {
		return nil, err
	}
	if commerce == nil {
		return nil, NewNotFound("commerce")
	}

	categories, err := s.categoryRepo.ListByCommerce(ctx, commerce.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PublicCategoryView, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		views = append(views, dto.PublicCategoryView{
			ID:            c.ID,
			CommerceID:    c.CommerceID,
			CategoryName:  c.CategoryName,
			ImageCategory: utils.EncodeImageBase64(c.ImageCategory),
		})
	}
	return views, nil
}

// ListProducts 分类下的商品列表，图片内联 base64
func (s *PublicCatalogService) ListProducts(ctx context.Context, categoryID int64) ([]dto.PublicProductView, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewNotFound("category")
	}

	products, err := s.productRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PublicProductView, 0, len(products))
	for i := range products {
		p := &products[i]
		views = append(views, dto.PublicProductView{
			ID:           p.ID,
			CategoryID:   p.CategoryID,
			ProductName:  p.ProductName,
			Price:        p.Price,
			Reference:    p.Reference,
			Description:  p.Description,
			ImageProduct: utils.EncodeImageBase64(p.ImageProduct),
		})
	}
	return views, nil
}

// ListDetails 商品下的明细列表，图片内联 base64
func (s *PublicCatalogService) ListDetails(ctx context.Context, productID int64) ([]dto.PublicDetailView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, NewNotFound("product")
	}

	details, err := s.detailRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PublicDetailView, 0, len(details))
	for i := range details {
		d := &details[i]
		views = append(views, dto.PublicDetailView{
			ID:          d.ID,
			ProductID:   d.ProductID,
			DetailName:  d.DetailName,
			Description: d.Description,
			ImageDetail: utils.EncodeImageBase64(d.ImageDetail),
		})
	}
	return views, nil
}

// GetProductImage 商品单图原始字节（配合 Content-Type 直接出图）
func (s *PublicCatalogService) GetProductImage(ctx context.Context, productID int64) ([]byte, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || len(product.ImageProduct) == 0 {
		return nil, NewNotFound("image")
	}
	return product.ImageProduct, nil
}

func commerceView(c *model.Commerce) *dto.PublicCommerceView {
	return &dto.PublicCommerceView{
		ID:            c.ID,
		CommerceName:  c.CommerceName,
		VilleID:       c.VilleID,
		ImageCommerce: utils.EncodeImageBase64(c.ImageCommerce),
	}
}
