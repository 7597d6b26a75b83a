package model

// BusinessOwner 商户档案
// monthly_fee_paid 是付费功能开关的唯一事实来源，
// 由支付服务置 true、过期扫描任务置 false
type BusinessOwner struct {
	BaseModel
	UserID     int64  `gorm:"uniqueIndex;not null" json:"user_id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:255" json:"email"`
	Adresse    string `gorm:"size:255" json:"adresse"`
	Telephone1 string `gorm:"size:30" json:"telephone1"`
	Telephone2 string `gorm:"size:30" json:"telephone2"`
	Role       string `gorm:"size:30" json:"role"`

	MonthlyFeePaid bool `gorm:"default:false" json:"monthly_fee_paid"`

	// 头像/门面图，二进制直接入库，JSON 里不返回原始字节
	ImageOwner []byte `gorm:"type:bytea" json:"-"`

	// 关联关系
	Commerces     []Commerce     `gorm:"foreignKey:BusinessOwnerID;constraint:OnDelete:CASCADE" json:"commerces,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:BusinessOwnerID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	AccessControl *AccessControl `gorm:"foreignKey:BusinessOwnerID;constraint:OnDelete:CASCADE" json:"access_control,omitempty"`
}
