package dto

// ==================== 商铺 ====================

// CreateCommerceRequest 创建商铺请求
type CreateCommerceRequest struct {
	CommerceName string `json:"commerce_name" form:"commerce_name" binding:"required,max=100"`
	VilleID      int64  `json:"ville_id" form:"ville_id" binding:"required"`
}

// UpdateCommerceRequest 更新商铺请求，nil 表示不动
type UpdateCommerceRequest struct {
	CommerceName *string `json:"commerce_name" form:"commerce_name"`
	VilleID      *int64  `json:"ville_id" form:"ville_id"`
}

// ==================== 分类 ====================

// CreateCategoryRequest 创建分类请求
// commerce_id 走请求体，与原有客户端保持一致
type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" form:"category_name" binding:"required,max=100"`
	CommerceID   int64  `json:"commerce_id" form:"commerce_id" binding:"required"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name" form:"category_name"`
}

// ==================== 商品 ====================

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	ProductName string  `json:"product_name" form:"product_name" binding:"required,max=100"`
	Price       float64 `json:"price" form:"price"`
	Reference   string  `json:"reference" form:"reference" binding:"max=100"`
	Description string  `json:"description" form:"description"`
}

// UpdateProductRequest 更新商品请求，nil 表示不动
type UpdateProductRequest struct {
	ProductName *string  `json:"product_name" form:"product_name"`
	Price       *float64 `json:"price" form:"price"`
	Reference   *string  `json:"reference" form:"reference"`
	Description *string  `json:"description" form:"description"`
}

// ==================== 明细 ====================

// CreateDetailRequest 创建明细请求
type CreateDetailRequest struct {
	DetailName  string `json:"detail_name" form:"detail_name" binding:"required,max=100"`
	Description string `json:"description" form:"description"`
}

// UpdateDetailRequest 更新明细请求
type UpdateDetailRequest struct {
	DetailName  *string `json:"detail_name" form:"detail_name"`
	Description *string `json:"description" form:"description"`
}

// ==================== 城市 ====================

// CreateVilleRequest 创建城市请求
type CreateVilleRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
