package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== PaymentExpiryTask 月费过期扫描 ====================

// PaymentExpiryTask 扫描逾期的 active 支付并关闭对应商户的付费闸门
//
// 状态机只有 active -> expired 一条单向边，行级条件更新保证
// 重复扫描 / 与请求流量并发执行都不会二次转移
type PaymentExpiryTask struct {
	PaymentRepo repository.PaymentRepository
	OwnerRepo   repository.BusinessOwnerRepository
	AccessRepo  repository.AccessControlRepository
	Cron        *cron.Cron

	sweepTimeout time.Duration
}

// NewPaymentExpiryTask 创建过期扫描任务
func NewPaymentExpiryTask(
	paymentRepo repository.PaymentRepository,
	ownerRepo repository.BusinessOwnerRepository,
	accessRepo repository.AccessControlRepository,
) *PaymentExpiryTask {
	return &PaymentExpiryTask{
		PaymentRepo:  paymentRepo,
		OwnerRepo:    ownerRepo,
		AccessRepo:   accessRepo,
		Cron:         cron.New(cron.WithSeconds()), // 支持秒级表达式
		sweepTimeout: 5 * time.Minute,
	}
}

// Start 启动定时任务：进程启动先扫一遍，之后每天凌晨 3 点再扫
func (t *PaymentExpiryTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.sweepTimeout)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次月费过期扫描...")
		t.runSweep(ctx)
	}()

	// 定时策略
	_, err := t.Cron.AddFunc("0 0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.sweepTimeout)
		defer cancel()

		t.runSweep(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动月费过期定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("月费过期扫描任务已启动 (每天 03:00 执行)")
}

// Stop 停止定时任务
func (t *PaymentExpiryTask) Stop() {
	t.Cron.Stop()
}

func (t *PaymentExpiryTask) runSweep(ctx context.Context) {
	result, err := t.Sweep(ctx)
	if err != nil {
		log.Printf("[Cron] 月费过期扫描失败: %v", err)
		return
	}
	log.Printf("[Cron] 月费过期扫描完成: 命中 %d, 转移 %d, 失败 %d",
		result.Scanned, result.Expired, result.Failed)
}

// Sweep 执行一轮扫描并返回汇总
//
// 单行失败只记日志不中断，保证一个商户的问题不影响其他商户；
// 整轮幂等：逾期判定基于行状态，重复执行不会产生新的转移
func (t *PaymentExpiryTask) Sweep(ctx context.Context) (*dto.SweepResult, error) {
	now := time.Now()

	overdue, err := t.PaymentRepo.FindOverdueActive(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &dto.SweepResult{Scanned: len(overdue)}

	for i := range overdue {
		payment := &overdue[i]

		select {
		case <-ctx.Done():
			log.Println("[Cron] 扫描超时停止")
			return result, ctx.Err()
		default:
		}

		// 1. 单行原子转移；查询和更新之间别人已转移则跳过
		moved, err := t.PaymentRepo.MarkExpired(ctx, payment.ID)
		if err != nil {
			log.Printf("[Cron] 支付记录 %d 转移失败: %v", payment.ID, err)
			result.Failed++
			continue
		}
		if !moved {
			continue
		}
		result.Expired++

		// 2. 商户若没有其他在期 active 支付，同一轮内关闭闸门
		hasActive, err := t.PaymentRepo.HasActive(ctx, payment.BusinessOwnerID, now)
		if err != nil {
			log.Printf("[Cron] 商户 %d 在期支付查询失败: %v", payment.BusinessOwnerID, err)
			result.Failed++
			continue
		}
		if hasActive {
			continue
		}

		if err := t.OwnerRepo.SetMonthlyFeePaid(ctx, payment.BusinessOwnerID, false); err != nil {
			log.Printf("[Cron] 商户 %d 闸门关闭失败: %v", payment.BusinessOwnerID, err)
			result.Failed++
			continue
		}
		if err := t.AccessRepo.SetCatalogEnabled(ctx, payment.BusinessOwnerID, false); err != nil {
			// 开关联动失败不算整行失败，闸门本体已经关上
			log.Printf("[Cron] 商户 %d 功能开关联动失败: %v", payment.BusinessOwnerID, err)
		}
	}

	return result, nil
}
