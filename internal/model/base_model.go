package model

import (
	"time"
)

// BaseModel 公共字段
// 本系统的删除都是物理删除（父表删除级联子表），因此不使用 gorm 软删除
type BaseModel struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
