package service

import (
	"vcp_backend_v1_202609/internal/model"
)

// ==================== SubscriptionGate 订阅闸门 ====================

// SubscriptionGate 付费功能闸门
// 只读 monthly_fee_paid 这一个字段，O(1) 无副作用：
// 支付记录与开关的一致性由过期扫描任务维护，不在请求热路径上查支付表
type SubscriptionGate struct{}

// NewSubscriptionGate 创建闸门
func NewSubscriptionGate() *SubscriptionGate {
	return &SubscriptionGate{}
}

// IsOpen 商户是否可以使用付费功能
func (g *SubscriptionGate) IsOpen(owner *model.BusinessOwner) bool {
	return owner != nil && owner.MonthlyFeePaid
}
