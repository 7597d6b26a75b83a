package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== ProductController 商品控制器 ====================

// ProductController 分类下商品的维护，路径携带完整链路 ID
type ProductController struct {
	productSvc *service.ProductService
}

// NewProductController 创建商品控制器
func NewProductController(productSvc *service.ProductService) *ProductController {
	return &ProductController{productSvc: productSvc}
}

// chainIDs 解析路径上的 commerceId/categoryId
func chainIDs(ctx *gin.Context) (commerceID, categoryID int64, ok bool) {
	commerceID, ok = paramID(ctx, "commerceId")
	if !ok {
		return 0, 0, false
	}
	categoryID, ok = paramID(ctx, "categoryId")
	if !ok {
		return 0, 0, false
	}
	return commerceID, categoryID, true
}

// Create 创建商品
// @Summary 创建商品
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} model.Product
// @Router /api/products/{commerceId}/{categoryId} [post]
func (c *ProductController) Create(ctx *gin.Context) {
	commerceID, categoryID, ok := chainIDs(ctx)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_product")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := c.productSvc.Create(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// ListByCategory 列出某分类下全部商品
// @Summary 商品列表
// @Tags Product
// @Produce json
// @Router /api/products/{commerceId}/{categoryId} [get]
func (c *ProductController) ListByCategory(ctx *gin.Context) {
	commerceID, categoryID, ok := chainIDs(ctx)
	if !ok {
		return
	}

	products, err := c.productSvc.ListByCategory(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// Get 取单个商品
// @Summary 商品详情
// @Tags Product
// @Produce json
// @Router /api/products/{commerceId}/{categoryId}/{productId} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	commerceID, categoryID, ok := chainIDs(ctx)
	if !ok {
		return
	}
	productID, ok := paramID(ctx, "productId")
	if !ok {
		return
	}

	product, err := c.productSvc.Get(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// Update 更新商品
// @Summary 更新商品
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Router /api/products/{commerceId}/{categoryId}/{productId} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	commerceID, categoryID, ok := chainIDs(ctx)
	if !ok {
		return
	}
	productID, ok := paramID(ctx, "productId")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_product")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := c.productSvc.Update(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID, &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// Delete 删除商品（级联明细）
// @Summary 删除商品
// @Tags Product
// @Produce json
// @Router /api/products/{commerceId}/{categoryId}/{productId} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	commerceID, categoryID, ok := chainIDs(ctx)
	if !ok {
		return
	}
	productID, ok := paramID(ctx, "productId")
	if !ok {
		return
	}

	if err := c.productSvc.Delete(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetImage 取商品图片（原始二进制）
// @Summary 商品图片
// @Tags Product
// @Produce image/jpeg
// @Router /api/products/{commerceId}/{categoryId}/{productId}/image [get]
func (c *ProductController) GetImage(ctx *gin.Context) {
	commerceID, categoryID, ok := chainIDs(ctx)
	if !ok {
		return
	}
	productID, ok := paramID(ctx, "productId")
	if !ok {
		return
	}

	image, err := c.productSvc.GetImage(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	writeImage(ctx, image)
}
