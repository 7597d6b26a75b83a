package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// BusinessOwnerRepository 商户档案仓储接口
type BusinessOwnerRepository interface {
	Create(ctx context.Context, owner *model.BusinessOwner) error
	GetByID(ctx context.Context, id int64) (*model.BusinessOwner, error)
	GetByUserID(ctx context.Context, userID int64) (*model.BusinessOwner, error)
	GetByEmail(ctx context.Context, email string) (*model.BusinessOwner, error)
	Update(ctx context.Context, owner *model.BusinessOwner) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	SetMonthlyFeePaid(ctx context.Context, id int64, paid bool) error
	Delete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type ownerRepo struct {
	db *gorm.DB
}

// NewBusinessOwnerRepository 创建商户仓储
func NewBusinessOwnerRepository(db *gorm.DB) BusinessOwnerRepository {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) Create(ctx context.Context, owner *model.BusinessOwner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (*model.BusinessOwner, error) {
	var owner model.BusinessOwner
	err := r.db.WithContext(ctx).First(&owner, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetByUserID 按账号查商户，归属链解析的第一步
func (r *ownerRepo) GetByUserID(ctx context.Context, userID int64) (*model.BusinessOwner, error) {
	var owner model.BusinessOwner
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepo) GetByEmail(ctx context.Context, email string) (*model.BusinessOwner, error) {
	var owner model.BusinessOwner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepo) Update(ctx context.Context, owner *model.BusinessOwner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.BusinessOwner{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// SetMonthlyFeePaid 翻转付费开关，过期扫描和支付服务共用
func (r *ownerRepo) SetMonthlyFeePaid(ctx context.Context, id int64, paid bool) error {
	return r.db.WithContext(ctx).
		Model(&model.BusinessOwner{}).
		Where("id = ?", id).
		Update("monthly_fee_paid", paid).Error
}

// Delete 删除商户并级联其下全部数据（商铺/分类/商品/明细/支付/开关）
// 级联是仓储层契约，调用方不重复实现
func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commerceIDs := tx.Model(&model.Commerce{}).Select("id").Where("business_owner_id = ?", id)
		categoryIDs := tx.Model(&model.Category{}).Select("id").Where("commerce_id IN (?)", commerceIDs)
		productIDs := tx.Model(&model.Product{}).Select("id").Where("category_id IN (?)", categoryIDs)

		if err := tx.Where("product_id IN (?)", productIDs).Delete(&model.Detail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("commerce_id IN (?)", commerceIDs).Delete(&model.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("business_owner_id = ?", id).Delete(&model.Commerce{}).Error; err != nil {
			return err
		}
		if err := tx.Where("business_owner_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("business_owner_id = ?", id).Delete(&model.AccessControl{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BusinessOwner{}, id).Error
	})
}
