package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== VilleController 城市控制器 ====================

// VilleController 城市清单，列表公开，创建仅管理员
type VilleController struct {
	villeSvc *service.VilleService
}

// NewVilleController 创建城市控制器
func NewVilleController(villeSvc *service.VilleService) *VilleController {
	return &VilleController{villeSvc: villeSvc}
}

// Create 创建城市
// @Summary 创建城市
// @Tags Ville
// @Accept json
// @Produce json
// @Success 201 {object} model.Ville
// @Router /api/villes [post]
func (c *VilleController) Create(ctx *gin.Context) {
	var req dto.CreateVilleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ville, err := c.villeSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ville)
}

// List 列出全部城市
// @Summary 城市列表
// @Tags Ville
// @Produce json
// @Router /api/villes [get]
func (c *VilleController) List(ctx *gin.Context) {
	villes, err := c.villeSvc.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, villes)
}
