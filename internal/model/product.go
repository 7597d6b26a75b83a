package model

// Product 分类下的商品：Category -> Product
type Product struct {
	BaseModel
	CategoryID  int64   `gorm:"index;not null" json:"category_id"`
	ProductName string  `gorm:"size:100;not null" json:"product_name"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`
	Reference   string  `gorm:"size:100" json:"reference"`
	Description string  `gorm:"type:text" json:"description"`

	ImageProduct []byte `gorm:"type:bytea" json:"-"`

	Details []Detail `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}
