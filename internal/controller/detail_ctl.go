package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== DetailController 明细控制器 ====================

// DetailController 商品下明细的维护，链路最深的一层
type DetailController struct {
	detailSvc *service.DetailService
}

// NewDetailController 创建明细控制器
func NewDetailController(detailSvc *service.DetailService) *DetailController {
	return &DetailController{detailSvc: detailSvc}
}

// productChainIDs 解析路径上的 commerceId/categoryId/productId
func productChainIDs(ctx *gin.Context) (commerceID, categoryID, productID int64, ok bool) {
	commerceID, ok = paramID(ctx, "commerceId")
	if !ok {
		return 0, 0, 0, false
	}
	categoryID, ok = paramID(ctx, "categoryId")
	if !ok {
		return 0, 0, 0, false
	}
	productID, ok = paramID(ctx, "productId")
	if !ok {
		return 0, 0, 0, false
	}
	return commerceID, categoryID, productID, true
}

// Create 创建明细
// @Summary 创建明细
// @Tags Detail
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} model.Detail
// @Router /api/details/{commerceId}/{categoryId}/{productId} [post]
func (c *DetailController) Create(ctx *gin.Context) {
	commerceID, categoryID, productID, ok := productChainIDs(ctx)
	if !ok {
		return
	}

	var req dto.CreateDetailRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_detail")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := c.detailSvc.Create(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID, &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, detail)
}

// ListByProduct 列出某商品下全部明细
// @Summary 明细列表
// @Tags Detail
// @Produce json
// @Router /api/details/{commerceId}/{categoryId}/{productId} [get]
func (c *DetailController) ListByProduct(ctx *gin.Context) {
	commerceID, categoryID, productID, ok := productChainIDs(ctx)
	if !ok {
		return
	}

	details, err := c.detailSvc.ListByProduct(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// Get 取单条明细
// @Summary 明细详情
// @Tags Detail
// @Produce json
// @Router /api/details/{commerceId}/{categoryId}/{productId}/{detailId} [get]
func (c *DetailController) Get(ctx *gin.Context) {
	commerceID, categoryID, productID, ok := productChainIDs(ctx)
	if !ok {
		return
	}
	detailID, ok := paramID(ctx, "detailId")
	if !ok {
		return
	}

	detail, err := c.detailSvc.Get(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID, detailID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// Update 更新明细
// @Summary 更新明细
// @Tags Detail
// @Accept multipart/form-data
// @Produce json
// @Router /api/details/{commerceId}/{categoryId}/{productId}/{detailId} [put]
func (c *DetailController) Update(ctx *gin.Context) {
	commerceID, categoryID, productID, ok := productChainIDs(ctx)
	if !ok {
		return
	}
	detailID, ok := paramID(ctx, "detailId")
	if !ok {
		return
	}

	var req dto.UpdateDetailRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(ctx, "image_detail")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := c.detailSvc.Update(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID, detailID, &req, image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// Delete 删除明细
// @Summary 删除明细
// @Tags Detail
// @Produce json
// @Router /api/details/{commerceId}/{categoryId}/{productId}/{detailId} [delete]
func (c *DetailController) Delete(ctx *gin.Context) {
	commerceID, categoryID, productID, ok := productChainIDs(ctx)
	if !ok {
		return
	}
	detailID, ok := paramID(ctx, "detailId")
	if !ok {
		return
	}

	if err := c.detailSvc.Delete(ctx.Request.Context(), middleware.UserID(ctx), commerceID, categoryID, productID, detailID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
