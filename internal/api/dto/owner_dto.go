package dto

// ==================== 商户档案 ====================

// CreateOwnerRequest 创建商户请求
// email 和 user_id 从登录账号带出，不接受请求方传入
type CreateOwnerRequest struct {
	Name       string `json:"name" form:"name" binding:"required,max=100"`
	Adresse    string `json:"adresse" form:"adresse" binding:"max=255"`
	Telephone1 string `json:"telephone1" form:"telephone1" binding:"max=30"`
	Telephone2 string `json:"telephone2" form:"telephone2" binding:"max=30"`
	Role       string `json:"role" form:"role" binding:"max=30"`
}

// UpdateOwnerRequest 更新商户非图片字段，nil 表示不动
// monthly_fee_paid 不在这里：只有支付服务和过期扫描能动它
type UpdateOwnerRequest struct {
	Name       *string `json:"name" form:"name"`
	Adresse    *string `json:"adresse" form:"adresse"`
	Telephone1 *string `json:"telephone1" form:"telephone1"`
	Telephone2 *string `json:"telephone2" form:"telephone2"`
	Role       *string `json:"role" form:"role"`
}
