package model

// Detail 商品明细，归属链的末级：Product -> Detail
type Detail struct {
	BaseModel
	ProductID   int64  `gorm:"index;not null" json:"product_id"`
	DetailName  string `gorm:"size:100;not null" json:"detail_name"`
	Description string `gorm:"type:text" json:"description"`

	ImageDetail []byte `gorm:"type:bytea" json:"-"`
}
