package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品维护，链路第三级
type ProductService struct {
	resolver    *ChainResolver
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(resolver *ChainResolver, productRepo repository.ProductRepository) *ProductService {
	return &ProductService{resolver: resolver, productRepo: productRepo}
}

// Create 在分类下创建商品
func (s *ProductService) Create(ctx context.Context, userID, commerceID, categoryID int64, req *dto.CreateProductRequest, image []byte) (*model.Product, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		CategoryID:   chain.Category.ID,
		ProductName:  req.ProductName,
		Price:        req.Price,
		Reference:    req.Reference,
		Description:  req.Description,
		ImageProduct: image,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListByCategory 列出分类下的全部商品
func (s *ProductService) ListByCategory(ctx context.Context, userID, commerceID, categoryID int64) ([]model.Product, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListByCategory(ctx, chain.Category.ID)
}

// Get 取单个商品
func (s *ProductService) Get(ctx context.Context, userID, commerceID, categoryID, productID int64) (*model.Product, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID,
	})
	if err != nil {
		return nil, err
	}
	return chain.Product, nil
}

// Update 更新商品，nil 字段不动，带图则换图
func (s *ProductService) Update(ctx context.Context, userID, commerceID, categoryID, productID int64, req *dto.UpdateProductRequest, image []byte) (*model.Product, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID,
	})
	if err != nil {
		return nil, err
	}
	product := chain.Product

	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Reference != nil {
		product.Reference = *req.Reference
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if len(image) > 0 {
		product.ImageProduct = image
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品，明细级联
func (s *ProductService) Delete(ctx context.Context, userID, commerceID, categoryID, productID int64) error {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID,
	})
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, chain.Product.ID)
}

// GetImage 取商品图片的原始字节
func (s *ProductService) GetImage(ctx context.Context, userID, commerceID, categoryID, productID int64) ([]byte, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID,
	})
	if err != nil {
		return nil, err
	}
	if len(chain.Product.ImageProduct) == 0 {
		return nil, NewNotFound("image")
	}
	return chain.Product.ImageProduct, nil
}
