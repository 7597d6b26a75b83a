package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== VilleService 城市服务 ====================

// VilleService 城市字典维护，录入只给管理员
type VilleService struct {
	villeRepo repository.VilleRepository
}

// NewVilleService 创建城市服务
func NewVilleService(villeRepo repository.VilleRepository) *VilleService {
	return &VilleService{villeRepo: villeRepo}
}

// Create 新增城市
func (s *VilleService) Create(ctx context.Context, req *dto.CreateVilleRequest) (*model.Ville, error) {
	ville := &model.Ville{Name: req.Name}
	if err := s.villeRepo.Create(ctx, ville); err != nil {
		return nil, err
	}
	return ville, nil
}

// List 列出全部城市
func (s *VilleService) List(ctx context.Context) ([]model.Ville, error) {
	return s.villeRepo.List(ctx)
}
