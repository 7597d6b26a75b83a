package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/service"
)

// ==================== PublicController 公开目录控制器 ====================

// PublicController 面向访客的只读目录浏览，不做归属校验
type PublicController struct {
	publicSvc *service.PublicCatalogService
}

// NewPublicController 创建公开目录控制器
func NewPublicController(publicSvc *service.PublicCatalogService) *PublicController {
	return &PublicController{publicSvc: publicSvc}
}

// GetOwner 公开的商户主页信息
// @Summary 公开商户信息
// @Tags Public
// @Produce json
// @Router /api/business-owners/public-business-owner/{id} [get]
func (c *PublicController) GetOwner(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	owner, err := c.publicSvc.GetOwner(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, owner)
}

// GetCommerce 公开的商铺信息
// @Summary 公开商铺信息
// @Tags Public
// @Produce json
// @Router /api/public/commerces/{commerceId} [get]
func (c *PublicController) GetCommerce(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	commerce, err := c.publicSvc.GetCommerce(ctx.Request.Context(), commerceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commerce)
}

// ListCommercesByVille 按城市列出商铺
// @Summary 城市商铺列表
// @Tags Public
// @Produce json
// @Router /api/public/villes/{villeId}/commerces [get]
func (c *PublicController) ListCommercesByVille(ctx *gin.Context) {
	villeID, ok := paramID(ctx, "villeId")
	if !ok {
		return
	}

	commerces, err := c.publicSvc.ListCommercesByVille(ctx.Request.Context(), villeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commerces)
}

// ListCategories 公开的分类列表，图片走 base64
// @Summary 公开分类列表
// @Tags Public
// @Produce json
// @Router /api/public/commerces/{commerceId}/categories [get]
func (c *PublicController) ListCategories(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	categories, err := c.publicSvc.ListCategories(ctx.Request.Context(), commerceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// ListProducts 公开的商品列表
// @Summary 公开商品列表
// @Tags Public
// @Produce json
// @Router /api/public/categories/{categoryId}/products [get]
func (c *PublicController) ListProducts(ctx *gin.Context) {
	categoryID, ok := paramID(ctx, "categoryId")
	if !ok {
		return
	}

	products, err := c.publicSvc.ListProducts(ctx.Request.Context(), categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// ListDetails 公开的明细列表
// @Summary 公开明细列表
// @Tags Public
// @Produce json
// @Router /api/public/products/{productId}/details [get]
func (c *PublicController) ListDetails(ctx *gin.Context) {
	productID, ok := paramID(ctx, "productId")
	if !ok {
		return
	}

	details, err := c.publicSvc.ListDetails(ctx.Request.Context(), productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// GetProductImage 公开的商品图片（原始二进制）
// @Summary 公开商品图片
// @Tags Public
// @Produce image/jpeg
// @Router /api/public/products/{productId}/image [get]
func (c *PublicController) GetProductImage(ctx *gin.Context) {
	productID, ok := paramID(ctx, "productId")
	if !ok {
		return
	}

	image, err := c.publicSvc.GetProductImage(ctx.Request.Context(), productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	writeImage(ctx, image)
}
