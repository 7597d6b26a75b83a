package model

// Ville 城市，商铺的地理归属
type Ville struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Commerces []Commerce `gorm:"foreignKey:VilleID" json:"commerces,omitempty"`
}
