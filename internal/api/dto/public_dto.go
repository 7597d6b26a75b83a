package dto

// 公开只读视图
// 列表载荷里的图片统一重编码为 base64 文本，单图接口走原始二进制

// PublicOwnerView 商户公开信息
type PublicOwnerView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Adresse    string `json:"adresse"`
	Telephone1 string `json:"telephone1"`
	ImageOwner string `json:"image_owner,omitempty"` // base64
}

// PublicCommerceView 商铺公开信息
type PublicCommerceView struct {
	ID            int64  `json:"id"`
	CommerceName  string `json:"commerce_name"`
	VilleID       int64  `json:"ville_id"`
	ImageCommerce string `json:"image_commerce,omitempty"` // base64
}

// PublicCategoryView 分类公开信息
type PublicCategoryView struct {
	ID            int64  `json:"id"`
	CommerceID    int64  `json:"commerce_id"`
	CategoryName  string `json:"category_name"`
	ImageCategory string `json:"image_category,omitempty"` // base64
}

// PublicProductView 商品公开信息
type PublicProductView struct {
	ID           int64   `json:"id"`
	CategoryID   int64   `json:"category_id"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	Reference    string  `json:"reference"`
	Description  string  `json:"description"`
	ImageProduct string  `json:"image_product,omitempty"` // base64
}

// PublicDetailView 明细公开信息
type PublicDetailView struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	DetailName  string `json:"detail_name"`
	Description string `json:"description"`
	ImageDetail string `json:"image_detail,omitempty"` // base64
}
