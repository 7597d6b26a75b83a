package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// 月费默认周期
const defaultPaymentDays = 30

// ==================== PaymentService 支付服务 ====================

// PaymentService 月费支付记录维护
// 录入入口只给管理员 / 支付回调方；过期转移归过期扫描任务，不在这里做
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	ownerRepo   repository.BusinessOwnerRepository
}

// NewPaymentService 创建支付服务
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	ownerRepo repository.BusinessOwnerRepository,
) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, ownerRepo: ownerRepo}
}

// Record 录入一笔已完成的月费支付并打开商户的付费闸门
func (s *PaymentService) Record(ctx context.Context, req *dto.CreatePaymentRequest) (*model.Payment, error) {
	owner, err := s.ownerRepo.GetByID(ctx, req.BusinessOwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}

	days := req.DurationDays
	if days <= 0 {
		days = defaultPaymentDays
	}

	payment := &model.Payment{
		BusinessOwnerID: owner.ID,
		Reference:       uuid.New().String(),
		Amount:          req.Amount,
		Status:          model.PaymentStatusActive,
		ExpiresAt:       time.Now().AddDate(0, 0, days),
	}
	// 入库和开闸同一事务，闸门状态不会落后于支付记录
	if err := s.paymentRepo.CreateAndOpenGate(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListForUser 登录商户查看自己的支付历史
func (s *PaymentService) ListForUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	owner, err := s.ownerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}
	return s.paymentRepo.ListByOwner(ctx, owner.ID)
}

// ListByOwner 管理员按商户查支付历史
func (s *PaymentService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Payment, error) {
	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}
	return s.paymentRepo.ListByOwner(ctx, owner.ID)
}
