package dto

import "time"

// ==================== 支付 ====================

// CreatePaymentRequest 录入一笔月费支付（管理员/支付回调方）
// duration_days 缺省 30 天
type CreatePaymentRequest struct {
	BusinessOwnerID int64   `json:"business_owner_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	DurationDays    int     `json:"duration_days" binding:"omitempty,gt=0"`
}

// PaymentView 支付记录视图
type PaymentView struct {
	ID              int64     `json:"id"`
	BusinessOwnerID int64     `json:"business_owner_id"`
	Reference       string    `json:"reference"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// SweepResult 过期扫描一轮的汇总
type SweepResult struct {
	Scanned int `json:"scanned"` // 本轮命中的逾期 active 记录数
	Expired int `json:"expired"` // 实际完成 active -> expired 转移的记录数
	Failed  int `json:"failed"`  // 单行失败数（已记日志，不中断扫描）
}
