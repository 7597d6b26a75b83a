package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== CommerceService 商铺服务 ====================

// CommerceService 商铺维护，链路第一级
type CommerceService struct {
	resolver     *ChainResolver
	commerceRepo repository.CommerceRepository
	villeRepo    repository.VilleRepository
}

// NewCommerceService 创建商铺服务
func NewCommerceService(
	resolver *ChainResolver,
	commerceRepo repository.CommerceRepository,
	villeRepo repository.VilleRepository,
) *CommerceService {
	return &CommerceService{resolver: resolver, commerceRepo: commerceRepo, villeRepo: villeRepo}
}

// Create 创建商铺，城市必须已存在
func (s *CommerceService) Create(ctx context.Context, userID int64, req *dto.CreateCommerceRequest, image []byte) (*model.Commerce, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{})
	if err != nil {
		return nil, err
	}

	ville, err := s.villeRepo.GetByID(ctx, req.VilleID)
	if err != nil {
		return nil, err
	}
	if ville == nil {
		return nil, NewNotFound("ville")
	}

	commerce := &model.Commerce{
		BusinessOwnerID: chain.Owner.ID, // 以解析结果为准，不信任请求体
		VilleID:         ville.ID,
		CommerceName:    req.CommerceName,
		ImageCommerce:   image,
	}
	if err := s.commerceRepo.Create(ctx, commerce); err != nil {
		return nil, err
	}
	return commerce, nil
}

// List 列出登录商户的全部商铺
func (s *CommerceService) List(ctx context.Context, userID int64) ([]model.Commerce, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{})
	if err != nil {
		return nil, err
	}
	return s.commerceRepo.ListByOwner(ctx, chain.Owner.ID)
}

// Get 取单个商铺
func (s *CommerceService) Get(ctx context.Context, userID, commerceID int64) (*model.Commerce, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID})
	if err != nil {
		return nil, err
	}
	return chain.Commerce, nil
}

// Update 更新商铺，nil 字段不动，带图则换图
func (s *CommerceService) Update(ctx context.Context, userID, commerceID int64, req *dto.UpdateCommerceRequest, image []byte) (*model.Commerce, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID})
	if err != nil {
		return nil, err
	}
	commerce := chain.Commerce

	if req.CommerceName != nil {
		commerce.CommerceName = *req.CommerceName
	}
	if req.VilleID != nil {
		ville, err := s.villeRepo.GetByID(ctx, *req.VilleID)
		if err != nil {
			return nil, err
		}
		if ville == nil {
			return nil, NewNotFound("ville")
		}
		commerce.VilleID = ville.ID
	}
	if len(image) > 0 {
		commerce.ImageCommerce = image
	}

	if err := s.commerceRepo.Update(ctx, commerce); err != nil {
		return nil, err
	}
	return commerce, nil
}

// Delete 删除商铺，分类/商品/明细一并级联
func (s *CommerceService) Delete(ctx context.Context, userID, commerceID int64) error {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID})
	if err != nil {
		return err
	}
	return s.commerceRepo.Delete(ctx, chain.Commerce.ID)
}

// GetImage 取商铺图片的原始字节
func (s *CommerceService) GetImage(ctx context.Context, userID, commerceID int64) ([]byte, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{CommerceID: commerceID})
	if err != nil {
		return nil, err
	}
	if len(chain.Commerce.ImageCommerce) == 0 {
		return nil, NewNotFound("image")
	}
	return chain.Commerce.ImageCommerce, nil
}
