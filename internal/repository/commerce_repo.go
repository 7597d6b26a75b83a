package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// CommerceRepository 商铺仓储接口
type CommerceRepository interface {
	Create(ctx context.Context, commerce *model.Commerce) error
	GetByID(ctx context.Context, id int64) (*model.Commerce, error)
	// GetByIDForOwner 双外键过滤 (id AND business_owner_id)，归属校验用
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*model.Commerce, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Commerce, error)
	ListByVille(ctx context.Context, villeID int64) ([]model.Commerce, error)
	Update(ctx context.Context, commerce *model.Commerce) error
	Delete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type commerceRepo struct {
	db *gorm.DB
}

// NewCommerceRepository 创建商铺仓储
func NewCommerceRepository(db *gorm.DB) CommerceRepository {
	return &commerceRepo{db: db}
}

func (r *commerceRepo) Create(ctx context.Context, commerce *model.Commerce) error {
	return r.db.WithContext(ctx).Create(commerce).Error
}

func (r *commerceRepo) GetByID(ctx context.Context, id int64) (*model.Commerce, error) {
	var commerce model.Commerce
	err := r.db.WithContext(ctx).Preload("Ville").First(&commerce, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &commerce, nil
}

func (r *commerceRepo) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*model.Commerce, error) {
	var commerce model.Commerce
	err := r.db.WithContext(ctx).
		Where("id = ? AND business_owner_id = ?", id, ownerID).
		First(&commerce).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &commerce, nil
}

func (r *commerceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Commerce, error) {
	var commerces []model.Commerce
	err := r.db.WithContext(ctx).
		Where("business_owner_id = ?", ownerID).
		Order("id").
		Find(&commerces).Error
	return commerces, err
}

func (r *commerceRepo) ListByVille(ctx context.Context, villeID int64) ([]model.Commerce, error) {
	var commerces []model.Commerce
	err := r.db.WithContext(ctx).
		Where("ville_id = ?", villeID).
		Order("id").
		Find(&commerces).Error
	return commerces, err
}

func (r *commerceRepo) Update(ctx context.Context, commerce *model.Commerce) error {
	return r.db.WithContext(ctx).Save(commerce).Error
}

// Delete 删除商铺并级联分类、商品、明细
func (r *commerceRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&model.Category{}).Select("id").Where("commerce_id = ?", id)
		productIDs := tx.Model(&model.Product{}).Select("id").Where("category_id IN (?)", categoryIDs)

		if err := tx.Where("product_id IN (?)", productIDs).Delete(&model.Detail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("commerce_id = ?", id).Delete(&model.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Commerce{}, id).Error
	})
}
