package model

// Commerce 商铺，归属链的第一级：BusinessOwner -> Commerce
type Commerce struct {
	BaseModel
	BusinessOwnerID int64  `gorm:"index;not null" json:"business_owner_id"`
	VilleID         int64  `gorm:"index;not null" json:"ville_id"`
	CommerceName    string `gorm:"size:100;not null" json:"commerce_name"`

	ImageCommerce []byte `gorm:"type:bytea" json:"-"`

	Ville      *Ville     `gorm:"foreignKey:VilleID" json:"ville,omitempty"`
	Categories []Category `gorm:"foreignKey:CommerceID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}
