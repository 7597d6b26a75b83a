package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== 单元测试 ====================

func TestPaymentService_Record(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, false) // 商户 1 未付费起步
	db.Create(&model.AccessControl{BusinessOwnerID: 1})

	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewBusinessOwnerRepository(db),
	)

	payment, err := svc.Record(context.Background(), &dto.CreatePaymentRequest{
		BusinessOwnerID: 1,
		Amount:          5000,
	})
	if err != nil {
		t.Fatalf("登记支付失败: %v", err)
	}

	if payment.Status != model.PaymentStatusActive {
		t.Errorf("status = %s, want active", payment.Status)
	}
	if payment.Reference == "" {
		t.Error("reference 不应为空")
	}
	if !payment.ExpiresAt.After(time.Now()) {
		t.Errorf("expires_at = %v, 应在当前时间之后", payment.ExpiresAt)
	}

	// 闸门与目录开关同步打开
	var owner model.BusinessOwner
	db.First(&owner, 1)
	if !owner.MonthlyFeePaid {
		t.Error("登记支付后 monthly_fee_paid 应为 true")
	}

	var access model.AccessControl
	db.Where("business_owner_id = ?", 1).First(&access)
	if !access.CatalogEnabled {
		t.Error("登记支付后 catalog_enabled 应为 true")
	}
}

func TestPaymentService_Record_CustomDuration(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, false)
	db.Create(&model.AccessControl{BusinessOwnerID: 1})

	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewBusinessOwnerRepository(db),
	)

	payment, err := svc.Record(context.Background(), &dto.CreatePaymentRequest{
		BusinessOwnerID: 1,
		Amount:          15000,
		DurationDays:    90,
	})
	if err != nil {
		t.Fatalf("登记支付失败: %v", err)
	}

	wantMin := time.Now().Add(89 * 24 * time.Hour)
	if payment.ExpiresAt.Before(wantMin) {
		t.Errorf("expires_at = %v, 90 天周期至少应到 %v", payment.ExpiresAt, wantMin)
	}
}

func TestPaymentService_Record_Atomic(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, false)
	db.Create(&model.AccessControl{BusinessOwnerID: 1})

	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewBusinessOwnerRepository(db),
	)

	// 让事务里的最后一步写开关失败
	if err := db.Migrator().DropTable(&model.AccessControl{}); err != nil {
		t.Fatalf("删表失败: %v", err)
	}

	_, err := svc.Record(context.Background(), &dto.CreatePaymentRequest{
		BusinessOwnerID: 1,
		Amount:          5000,
	})
	if err == nil {
		t.Fatal("开关写入失败时登记应整体报错")
	}

	// 整体回滚，不会留下闸门关着的 active 支付
	var count int64
	db.Model(&model.Payment{}).Count(&count)
	if count != 0 {
		t.Errorf("回滚后支付记录数 = %d, want 0", count)
	}

	var owner model.BusinessOwner
	db.First(&owner, 1)
	if owner.MonthlyFeePaid {
		t.Error("回滚后 monthly_fee_paid 应保持 false")
	}
}

func TestPaymentService_Record_OwnerMissing(t *testing.T) {
	db := setupServiceTestDB(t)

	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewBusinessOwnerRepository(db),
	)

	_, err := svc.Record(context.Background(), &dto.CreatePaymentRequest{
		BusinessOwnerID: 99,
		Amount:          5000,
	})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestPaymentService_ListByOwner(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, true)
	db.Create(&model.Payment{BusinessOwnerID: 1, Reference: "ref-1", Status: model.PaymentStatusExpired, ExpiresAt: time.Now().Add(-time.Hour)})
	db.Create(&model.Payment{BusinessOwnerID: 1, Reference: "ref-2", Status: model.PaymentStatusActive, ExpiresAt: time.Now().Add(time.Hour)})

	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewBusinessOwnerRepository(db),
	)

	payments, err := svc.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(payments) != 2 {
		t.Errorf("count = %d, want 2", len(payments))
	}
}
