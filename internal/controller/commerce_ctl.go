package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== CommerceController 商铺控制器 ====================

// CommerceController 登录商户的商铺维护
type CommerceController struct {
	commerceSvc *service.CommerceService
}

// NewCommerceController 创建商铺控制器
func NewCommerceController(commerceSvc *service.CommerceService) *CommerceController {
	return &CommerceController{commerceSvc: commerceSvc}
}

// Create 创建商铺 (multipart 可带 image_commerce)
// @Summary 创建商铺
// @Tags Commerce
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} model.Commerce
// @Router /api/my-commerces [post]
func (c *CommerceController) Create(ctx *gin.Context) {
	var req dto.CreateCommerceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_commerce")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commerce, err := c.commerceSvc.Create(ctx.Request.Context(), middleware.UserID(ctx), &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, commerce)
}

// List 列出本人全部商铺
// @Summary 商铺列表
// @Tags Commerce
// @Produce json
// @Router /api/my-commerces [get]
func (c *CommerceController) List(ctx *gin.Context) {
	commerces, err := c.commerceSvc.List(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commerces)
}

// Get 取单个商铺
// @Summary 商铺详情
// @Tags Commerce
// @Produce json
// @Router /api/my-commerces/{commerceId} [get]
func (c *CommerceController) Get(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	commerce, err := c.commerceSvc.Get(ctx.Request.Context(), middleware.UserID(ctx), commerceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commerce)
}

// Update 更新商铺
// @Summary 更新商铺
// @Tags Commerce
// @Accept multipart/form-data
// @Produce json
// @Router /api/my-commerces/{commerceId} [put]
func (c *CommerceController) Update(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	var req dto.UpdateCommerceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_commerce")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commerce, err := c.commerceSvc.Update(ctx.Request.Context(), middleware.UserID(ctx), commerceID, &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commerce)
}

// Delete 删除商铺（级联分类/商品/明细）
// @Summary 删除商铺
// @Tags Commerce
// @Produce json
// @Router /api/my-commerces/{commerceId} [delete]
func (c *CommerceController) Delete(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	if err := c.commerceSvc.Delete(ctx.Request.Context(), middleware.UserID(ctx), commerceID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetImage 取商铺图片（原始二进制）
// @Summary 商铺图片
// @Tags Commerce
// @Produce image/jpeg
// @Router /api/my-commerces/{commerceId}/image [get]
func (c *CommerceController) GetImage(ctx *gin.Context) {
	commerceID, ok := paramID(ctx, "commerceId")
	if !ok {
		return
	}

	image, err := c.commerceSvc.GetImage(ctx.Request.Context(), middleware.UserID(ctx), commerceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	writeImage(ctx, image)
}
