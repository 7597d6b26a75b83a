package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== CategoryController 分类控制器 ====================

// CategoryController 商铺下分类的维护
type CategoryController struct {
	categorySvc *service.CategoryService
}

// NewCategoryController 创建分类控制器
func NewCategoryController(categorySvc *service.CategoryService) *CategoryController {
	return &CategoryController{categorySvc: categorySvc}
}

// Create 创建分类 (commerce_id 在请求体)
// @Summary 创建分类
// @Tags Category
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} model.Category
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_category")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := c.categorySvc.Create(ctx.Request.Context(), middleware.UserID(ctx), &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// ListByCommerce 列出某商铺下全部分类
// @Summary 分类列表
// @Tags Category
// @Produce json
// @Router /api/categories/{commerceId} [get]
func (c *CategoryController) ListByCommerce(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	categories, err := c.categorySvc.ListByCommerce(ctx.Request.Context(), middleware.UserID(ctx), commerceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// Get 取单个分类
// @Summary 分类详情
// @Tags Category
// @Produce json
// @Router /api/categories/{commerceId}/{categoryId} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}
	categoryID, ok := paramID(ctx, "categoryId")
	if !ok {
		return
	}

	category, err := c.categorySvc.Get(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// Update 更新分类
// @Summary 更新分类
// @Tags Category
// @Accept multipart/form-data
// @Produce json
// @Router /api/categories/{commerceId}/{categoryId} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}
	categoryID, ok := paramID(ctx, "categoryId")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_category")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := c.categorySvc.Update(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// Delete 删除分类（级联商品/明细）
// @Summary 删除分类
// @Tags Category
// @Produce json
// @Router /api/categories/{commerceId}/{categoryId} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}
	categoryID, ok := paramID(ctx, "categoryId")
	if !ok {
		return
	}

	if err := c.categorySvc.Delete(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetImage 取分类图片（原始二进制）
// @Summary 分类图片
// @Tags Category
// @Produce image/jpeg
// @Router /api/categories/{commerceId}/{categoryId}/image [get]
func (c *CategoryController) GetImage(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}
	categoryID, ok := paramID(ctx, "categoryId")
	if !ok {
		return
	}

	image, err := c.categorySvc.GetImage(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	writeImage(ctx, image)
}
