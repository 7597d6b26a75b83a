package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// PaymentRepository 支付记录仓储接口
type PaymentRepository interface {
	// CreateAndOpenGate 支付入库与闸门打开在同一事务里落盘
	CreateAndOpenGate(ctx context.Context, payment *model.Payment) error
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Payment, error)
	// FindOverdueActive 过期扫描的输入：status=active 且已过 expires_at
	FindOverdueActive(ctx context.Context, now time.Time) ([]model.Payment, error)
	// MarkExpired 单行原子转移 active -> expired，重复执行影响行数为 0
	MarkExpired(ctx context.Context, id int64) (bool, error)
	// HasActive 商户当前是否还有未过期的 active 支付
	HasActive(ctx context.Context, ownerID int64, now time.Time) (bool, error)
}

// ==================== 仓储实现 ====================

type paymentRepo struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付仓储
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

// CreateAndOpenGate 录入 active 支付并同时打开付费闸门和目录开关，
// 任何一步失败整体回滚，不会留下闸门仍关着的 active 支付
func (r *paymentRepo) CreateAndOpenGate(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.BusinessOwner{}).
			Where("id = ?", payment.BusinessOwnerID).
			Update("monthly_fee_paid", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.AccessControl{}).
			Where("business_owner_id = ?", payment.BusinessOwnerID).
			Update("catalog_enabled", true).Error
	})
}

func (r *paymentRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("business_owner_id = ?", ownerID).
		Order("id desc").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindOverdueActive(ctx context.Context, now time.Time) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", model.PaymentStatusActive, now).
		Order("id").
		Find(&payments).Error
	return payments, err
}

// MarkExpired 条件更新，WHERE 带上旧状态保证单向转移：
// 并发扫描或重复扫描时第二次更新不命中任何行
func (r *paymentRepo) MarkExpired(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, model.PaymentStatusActive).
		Update("status", model.PaymentStatusExpired)
	return res.RowsAffected > 0, res.Error
}

func (r *paymentRepo) HasActive(ctx context.Context, ownerID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("business_owner_id = ? AND status = ? AND expires_at >= ?",
			ownerID, model.PaymentStatusActive, now).
		Count(&count).Error
	return count > 0, err
}
