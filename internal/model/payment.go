package model

import "time"

// Payment 状态常量
// 状态机只有一条单向边：active -> expired（由过期扫描任务执行）
// 续费是新建一条 active 记录，而不是把 expired 改回来
const (
	PaymentStatusActive  = "active"
	PaymentStatusExpired = "expired"
)

// Payment 月费支付记录
type Payment struct {
	BaseModel
	BusinessOwnerID int64     `gorm:"index;not null" json:"business_owner_id"`
	Reference       string    `gorm:"size:64;uniqueIndex" json:"reference"` // 对外流水号 (uuid)
	Amount          float64   `gorm:"type:decimal(10,2)" json:"amount"`
	Status          string    `gorm:"index;size:20;default:'active'" json:"status"`
	ExpiresAt       time.Time `gorm:"index" json:"expires_at"`
}
