package model

// 用户角色常量
const (
	RoleOwner = "owner" // 普通商户
	RoleAdmin = "admin" // 平台管理员
)

// User 登录账号
// 业务资料都挂在 BusinessOwner 上，User 只负责认证
type User struct {
	BaseModel
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希
	Role     string `gorm:"size:20;default:'owner'" json:"role"`

	// 一对一：一个 User 最多一个 BusinessOwner
	BusinessOwner *BusinessOwner `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"business_owner,omitempty"`
}
