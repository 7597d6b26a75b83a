package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== OwnerController 商户档案控制器 ====================

// OwnerController 商户档案维护
type OwnerController struct {
	ownerSvc *service.OwnerService
}

// NewOwnerController 创建商户控制器
func NewOwnerController(ownerSvc *service.OwnerService) *OwnerController {
	return &OwnerController{ownerSvc: ownerSvc}
}

// Create 为登录账号创建商户档案
// @Summary 创建商户档案
// @Tags BusinessOwner
// @Accept json
// @Produce json
// @Success 201 {object} model.BusinessOwner
// @Router /api/business-owners/create-business-owner [post]
func (c *OwnerController) Create(ctx *gin.Context) {
	var req dto.CreateOwnerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := c.ownerSvc.Create(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, owner)
}

// Get 取登录账号的商户档案
// @Summary 查询本人商户档案
// @Tags BusinessOwner
// @Produce json
// @Success 200 {object} model.BusinessOwner
// @Router /api/business-owners/get-business-owner [get]
func (c *OwnerController) Get(ctx *gin.Context) {
	owner, err := c.ownerSvc.GetForUser(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, owner)
}

// Update 更新非图片字段
// @Summary 更新商户档案
// @Tags BusinessOwner
// @Accept json
// @Produce json
// @Success 200 {object} model.BusinessOwner
// @Router /api/business-owners/update-business-owner [put]
func (c *OwnerController) Update(ctx *gin.Context) {
	var req dto.UpdateOwnerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := c.ownerSvc.Update(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, owner)
}

// UpdateImage 上传/替换商户图片 (multipart 字段 image_owner)
// @Summary 更新商户图片
// @Tags BusinessOwner
// @Accept multipart/form-data
// @Produce json
// @Router /api/business-owners/update-business-owner-image [put]
func (c *OwnerController) UpdateImage(ctx *gin.Context) {
	image, err := formImage(ctx, "image_owner")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := c.ownerSvc.UpdateImage(ctx.Request.Context(), middleware.UserID(ctx), image)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// 响应里带 image_uploaded 标记而不是原始字节
	ctx.JSON(http.StatusOK, gin.H{
		"id":               owner.ID,
		"name":             owner.Name,
		"email":            owner.Email,
		"monthly_fee_paid": owner.MonthlyFeePaid,
		"image_uploaded":   true,
	})
}

// GetImage 取商户图片（原始二进制）
// @Summary 商户图片
// @Tags BusinessOwner
// @Produce image/jpeg
// @Router /api/business-owners/get-business-owner-image [get]
func (c *OwnerController) GetImage(ctx *gin.Context) {
	image, err := c.ownerSvc.GetImage(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	writeImage(ctx, image)
}

// Delete 删除商户档案及名下全部数据
// @Summary 删除商户档案
// @Tags BusinessOwner
// @Produce json
// @Router /api/business-owners/delete-business-owner [delete]
func (c *OwnerController) Delete(ctx *gin.Context) {
	if err := c.ownerSvc.Delete(ctx.Request.Context(), middleware.UserID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Business owner deleted successfully"})
}

// FindByEmail 按邮箱查商户
// @Summary 按邮箱查商户
// @Tags BusinessOwner
// @Produce json
// @Router /api/business-owners/find-business-owner/{email} [get]
func (c *OwnerController) FindByEmail(ctx *gin.Context) {
	owner, err := c.ownerSvc.FindByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, owner)
}
