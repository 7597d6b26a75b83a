package model

// Category 商铺下的分类：Commerce -> Category
type Category struct {
	BaseModel
	CommerceID   int64  `gorm:"index;not null" json:"commerce_id"`
	CategoryName string `gorm:"size:100;not null" json:"category_name"`

	ImageCategory []byte `gorm:"type:bytea" json:"-"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
