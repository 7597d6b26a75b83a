package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// AccessControlRepository 功能开关仓储接口
type AccessControlRepository interface {
	Create(ctx context.Context, ac *model.AccessControl) error
	GetByOwnerID(ctx context.Context, ownerID int64) (*model.AccessControl, error)
	// SetCatalogEnabled 随支付状态联动目录开关
	SetCatalogEnabled(ctx context.Context, ownerID int64, enabled bool) error
}

// ==================== 仓储实现 ====================

type accessRepo struct {
	db *gorm.DB
}

// NewAccessControlRepository 创建功能开关仓储
func NewAccessControlRepository(db *gorm.DB) AccessControlRepository {
	return &accessRepo{db: db}
}

func (r *accessRepo) Create(ctx context.Context, ac *model.AccessControl) error {
	return r.db.WithContext(ctx).Create(ac).Error
}

func (r *accessRepo) GetByOwnerID(ctx context.Context, ownerID int64) (*model.AccessControl, error) {
	var ac model.AccessControl
	err := r.db.WithContext(ctx).Where("business_owner_id = ?", ownerID).First(&ac).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ac, nil
}

func (r *accessRepo) SetCatalogEnabled(ctx context.Context, ownerID int64, enabled bool) error {
	return r.db.WithContext(ctx).
		Model(&model.AccessControl{}).
		Where("business_owner_id = ?", ownerID).
		Update("catalog_enabled", enabled).Error
}
