package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/api/dto"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/service"
)

// ==================== PaymentController 月费支付控制器 ====================

// Sweeper 过期扫描入口，由定时任务实现，管理端可手动触发
type Sweeper interface {
	Sweep(ctx context.Context) (*dto.SweepResult, error)
}

// PaymentController 支付登记与查询，登记仅管理员可用
type PaymentController struct {
	paymentSvc *service.PaymentService
	sweeper    Sweeper
}

// NewPaymentController 创建支付控制器
func NewPaymentController(paymentSvc *service.PaymentService, sweeper Sweeper) *PaymentController {
	return &PaymentController{paymentSvc: paymentSvc, sweeper: sweeper}
}

// Record 登记一笔月费支付并打开订阅开关
// @Summary 登记支付
// @Tags Payment
// @Accept json
// @Produce json
// @Success 201 {object} model.Payment
// @Router /api/payments [post]
func (c *PaymentController) Record(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := c.paymentSvc.Record(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// ListMine 列出当前商户本人的支付记录
// @Summary 我的支付记录
// @Tags Payment
// @Produce json
// @Router /api/payments/my [get]
func (c *PaymentController) ListMine(ctx *gin.Context) {
	payments, err := c.paymentSvc.ListForUser(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// ListByOwner 按商户列出支付记录，管理员接口
// @Summary 商户支付记录
// @Tags Payment
// @Produce json
// @Router /api/payments/owner/{ownerId} [get]
func (c *PaymentController) ListByOwner(ctx *gin.Context) {
	ownerID, ok := paramID(ctx, "ownerId")
	if !ok {
		return
	}

	payments, err := c.paymentSvc.ListByOwner(ctx.Request.Context(), ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// Sweep 手动触发一次过期扫描，与每日定时任务同一段逻辑
// @Summary 触发过期扫描
// @Tags Payment
// @Produce json
// @Success 200 {object} dto.SweepResult
// @Router /api/payments/sweep [post]
func (c *PaymentController) Sweep(ctx *gin.Context) {
	result, err := c.sweeper.Sweep(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
