package model

// AccessControl 商户的功能开关
// 与 monthly_fee_paid 联动：付款打开，过期扫描关闭
type AccessControl struct {
	BaseModel
	BusinessOwnerID   int64 `gorm:"uniqueIndex;not null" json:"business_owner_id"`
	CatalogEnabled    bool  `gorm:"default:false" json:"catalog_enabled"`     // 目录维护（增删改）
	PublicPageEnabled bool  `gorm:"default:true" json:"public_page_enabled"` // 公开页展示
}
