package service

import (
	"context"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== OwnerService 商户档案服务 ====================

// OwnerService 商户档案维护
// 这些操作只看登录账号本身，不过订阅闸门：
// 没付费的商户也要能看到 / 维护自己的档案去续费
type OwnerService struct {
	ownerRepo  repository.BusinessOwnerRepository
	userRepo   repository.UserRepository
	accessRepo repository.AccessControlRepository
}

// NewOwnerService 创建商户服务
func NewOwnerService(
	ownerRepo repository.BusinessOwnerRepository,
	userRepo repository.UserRepository,
	accessRepo repository.AccessControlRepository,
) *OwnerService {
	return &OwnerService{ownerRepo: ownerRepo, userRepo: userRepo, accessRepo: accessRepo}
}

// Create 为登录账号建立商户档案，一个账号最多一份
// email 取自账号记录，monthly_fee_paid 固定 false 起步
func (s *OwnerService) Create(ctx context.Context, userID int64, req *dto.CreateOwnerRequest) (*model.BusinessOwner, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFound("user")
	}

	existing, err := s.ownerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOwnerExists
	}

	owner := &model.BusinessOwner{
		UserID:         user.ID,
		Name:           req.Name,
		Email:          user.Email,
		Adresse:        req.Adresse,
		Telephone1:     req.Telephone1,
		Telephone2:     req.Telephone2,
		Role:           req.Role,
		MonthlyFeePaid: false,
	}
	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	// 功能开关随档案建立，初始全关（目录功能等付费后打开）
	ac := &model.AccessControl{BusinessOwnerID: owner.ID}
	if err := s.accessRepo.Create(ctx, ac); err != nil {
		return nil, err
	}

	return owner, nil
}

// GetForUser 取登录账号的商户档案
func (s *OwnerService) GetForUser(ctx context.Context, userID int64) (*model.BusinessOwner, error) {
	owner, err := s.ownerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}
	return owner, nil
}

// GetByID 公开查询（无鉴权路由使用）
func (s *OwnerService) GetByID(ctx context.Context, id int64) (*model.BusinessOwner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}
	return owner, nil
}

// FindByEmail 按邮箱查商户
func (s *OwnerService) FindByEmail(ctx context.Context, email string) (*model.BusinessOwner, error) {
	owner, err := s.ownerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}
	return owner, nil
}

// Update 更新非图片字段，nil 字段不动
func (s *OwnerService) Update(ctx context.Context, userID int64, req *dto.UpdateOwnerRequest) (*model.BusinessOwner, error) {
	owner, err := s.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		owner.Name = *req.Name
	}
	if req.Adresse != nil {
		owner.Adresse = *req.Adresse
	}
	if req.Telephone1 != nil {
		owner.Telephone1 = *req.Telephone1
	}
	if req.Telephone2 != nil {
		owner.Telephone2 = *req.Telephone2
	}
	if req.Role != nil {
		owner.Role = *req.Role
	}

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// UpdateImage 更新商户图片
func (s *OwnerService) UpdateImage(ctx context.Context, userID int64, image []byte) (*model.BusinessOwner, error) {
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	owner, err := s.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	owner.ImageOwner = image
	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// GetImage 取商户图片的原始字节
func (s *OwnerService) GetImage(ctx context.Context, userID int64) ([]byte, error) {
	owner, err := s.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(owner.ImageOwner) == 0 {
		return nil, NewNotFound("image")
	}
	return owner.ImageOwner, nil
}

// Delete 删除商户档案及其名下全部数据（仓储层级联）
func (s *OwnerService) Delete(ctx context.Context, userID int64) error {
	owner, err := s.GetForUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.ownerRepo.Delete(ctx, owner.ID)
}
