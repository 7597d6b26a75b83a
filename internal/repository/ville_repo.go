package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// VilleRepository 城市仓储接口
type VilleRepository interface {
	Create(ctx context.Context, ville *model.Ville) error
	GetByID(ctx context.Context, id int64) (*model.Ville, error)
	List(ctx context.Context) ([]model.Ville, error)
}

// ==================== 仓储实现 ====================

type villeRepo struct {
	db *gorm.DB
}

// NewVilleRepository 创建城市仓储
func NewVilleRepository(db *gorm.DB) VilleRepository {
	return &villeRepo{db: db}
}

func (r *villeRepo) Create(ctx context.Context, ville *model.Ville) error {
	return r.db.WithContext(ctx).Create(ville).Error
}

func (r *villeRepo) GetByID(ctx context.Context, id int64) (*model.Ville, error) {
	var ville model.Ville
	err := r.db.WithContext(ctx).First(&ville, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ville, nil
}

func (r *villeRepo) List(ctx context.Context) ([]model.Ville, error) {
	var villes []model.Ville
	err := r.db.WithContext(ctx).Order("name").Find(&villes).Error
	return villes, err
}
