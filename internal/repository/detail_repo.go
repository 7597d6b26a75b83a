package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// DetailRepository 商品明细仓储接口
type DetailRepository interface {
	Create(ctx context.Context, detail *model.Detail) error
	// GetByIDForProduct 双外键过滤 (id AND product_id)，归属校验用
	GetByIDForProduct(ctx context.Context, id, productID int64) (*model.Detail, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Detail, error)
	Update(ctx context.Context, detail *model.Detail) error
	Delete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type detailRepo struct {
	db *gorm.DB
}

// NewDetailRepository 创建明细仓储
func NewDetailRepository(db *gorm.DB) DetailRepository {
	return &detailRepo{db: db}
}

func (r *detailRepo) Create(ctx context.Context, detail *model.Detail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *detailRepo) GetByIDForProduct(ctx context.Context, id, productID int64) (*model.Detail, error) {
	var detail model.Detail
	err := r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", id, productID).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *detailRepo) ListByProduct(ctx context.Context, productID int64) ([]model.Detail, error) {
	var details []model.Detail
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&details).Error
	return details, err
}

func (r *detailRepo) Update(ctx context.Context, detail *model.Detail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *detailRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Detail{}, id).Error
}
