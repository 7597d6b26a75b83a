package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== DetailService 明细服务 ====================

// DetailService 商品明细维护，链路末级
// 明细属于纯付费功能，除了解析器的闸门检查之外，
// 每个操作再直接确认一次闸门（纵深防御）
type DetailService struct {
	resolver   *ChainResolver
	detailRepo repository.DetailRepository
	gate       *SubscriptionGate
}

// NewDetailService 创建明细服务
func NewDetailService(resolver *ChainResolver, detailRepo repository.DetailRepository, gate *SubscriptionGate) *DetailService {
	return &DetailService{resolver: resolver, detailRepo: detailRepo, gate: gate}
}

// Create 在商品下创建明细
func (s *DetailService) Create(ctx context.Context, userID, commerceID, categoryID, productID int64, req *dto.CreateDetailRequest, image []byte) (*model.Detail, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID,
	})
	if err != nil {
		return nil, err
	}
	if !s.gate.IsOpen(chain.Owner) {
		return nil, ErrSubscriptionRequired
	}

	detail := &model.Detail{
		ProductID:   chain.Product.ID,
		DetailName:  req.DetailName,
		Description: req.Description,
		ImageDetail: image,
	}
	if err := s.detailRepo.Create(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListByProduct 列出商品下的全部明细
func (s *DetailService) ListByProduct(ctx context.Context, userID, commerceID, categoryID, productID int64) ([]model.Detail, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID,
	})
	if err != nil {
		return nil, err
	}
	if !s.gate.IsOpen(chain.Owner) {
		return nil, ErrSubscriptionRequired
	}
	return s.detailRepo.ListByProduct(ctx, chain.Product.ID)
}

// Get 取单个明细
func (s *DetailService) Get(ctx context.Context, userID, commerceID, categoryID, productID, detailID int64) (*model.Detail, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID, DetailID: detailID,
	})
	if err != nil {
		return nil, err
	}
	if !s.gate.IsOpen(chain.Owner) {
		return nil, ErrSubscriptionRequired
	}
	return chain.Detail, nil
}

// Update 更新明细
func (s *DetailService) Update(ctx context.Context, userID, commerceID, categoryID, productID, detailID int64, req *dto.UpdateDetailRequest, image []byte) (*model.Detail, error) {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID, DetailID: detailID,
	})
	if err != nil {
		return nil, err
	}
	if !s.gate.IsOpen(chain.Owner) {
		return nil, ErrSubscriptionRequired
	}
	detail := chain.Detail

	if req.DetailName != nil {
		detail.DetailName = *req.DetailName
	}
	if req.Description != nil {
		detail.Description = *req.Description
	}
	if len(image) > 0 {
		detail.ImageDetail = image
	}

	if err := s.detailRepo.Update(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// Delete 删除明细
func (s *DetailService) Delete(ctx context.Context, userID, commerceID, categoryID, productID, detailID int64) error {
	chain, err := s.resolver.Resolve(ctx, userID, ChainRequest{
		CommerceID: commerceID, CategoryID: categoryID, ProductID: productID, DetailID: detailID,
	})
	if err != nil {
		return err
	}
	if !s.gate.IsOpen(chain.Owner) {
		return ErrSubscriptionRequired
	}
	return s.detailRepo.Delete(ctx, chain.Detail.ID)
}
