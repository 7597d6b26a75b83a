package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== CategoryService 分类服务 ====================

// CategoryService 分类维护，链路第二级
type CategoryService struct {
	resolver     *ChainResolver
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(resolver *ChainResolver, categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{resolver: resolver, categoryRepo: categoryRepo}
}

// Create 在商铺下创建分类
func (s *CategoryService) Create(ctx context.Context, userID int64, req *dto.CreateCategoryRequest, image []byte) (*model.Category, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: req.CommerceID})
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		CommerceID:    chain.Commerce.ID,
		CategoryName:  req.CategoryName,
		ImageCategory: image,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListByCommerce 列出商铺下的全部分类
func (s *CategoryService) ListByCommerce(ctx context.Context, userID, commerceID int64) ([]model.Category, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID})
	if err != nil {
		return nil, err
	}
	return s.categoryRepo.ListByCommerce(ctx, chain.Commerce.ID)
}

// Get 取单个分类
func (s *CategoryService) Get(ctx context.Context, userID, commerceID, categoryID int64) (*model.Category, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	return chain.Category, nil
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, userID, commerceID, categoryID int64, req *dto.UpdateCategoryRequest, image []byte) (*model.Category, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	category := chain.Category

	if req.CategoryName != nil {
		category.CategoryName = *req.CategoryName
	}
	if len(image) > 0 {
		category.ImageCategory = image
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，商品/明细级联
func (s *CategoryService) Delete(ctx context.Context, userID, commerceID, categoryID int64) error {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID, CategoryID: categoryID})
	if err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, chain.Category.ID)
}

// GetImage 取分类图片的原始字节
func (s *CategoryService) GetImage(ctx context.Context, userID, commerceID, categoryID int64) ([]byte, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	if len(chain.Category.ImageCategory) == 0 {
		return nil, NewNotFound("image")
	}
	return chain.Category.ImageCategory, nil
}
