package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/service"
	"vcp_backend_v1_202609/pkg/utils"
)

// ==================== 错误翻译 ====================

// respondError 服务层错误到 HTTP 状态码的唯一翻译点
// 控制器不自己解读错误语义：
//   - 链路缺失/不归属 -> 404（文案不区分两种情况）
//   - 闸门关闭 -> 403
//   - 输入问题 -> 400
//   - 其余 -> 500，细节只进服务端日志
func respondError(ctx *gin.Context, err error) {
	var nf *service.NotFoundError
	var ve *service.ValidationError

	switch {
	case errors.As(err, &nf):
		ctx.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.Is(err, service.ErrSubscriptionRequired):
		ctx.JSON(http.StatusForbidden, gin.H{"error": service.ErrSubscriptionRequired.Error()})
	case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrOwnerExists):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoImage), errors.As(err, &ve):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] %s %s 内部错误: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ==================== 参数辅助 ====================

// paramID 解析路径里的数字 id，失败直接回 400
func paramID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// formImage 从 multipart 表单取可选图片，字段缺失返回 nil
func formImage(ctx *gin.Context, field string) ([]byte, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		// 非 multipart 请求或字段缺失都按"没传图"处理
		return nil, nil
	}
	return utils.ReadFormImage(fh)
}

// writeImage 以原始二进制出图，Content-Type 现场嗅探
func writeImage(ctx *gin.Context, data []byte) {
	ctx.Data(http.StatusOK, utils.ImageContentType(data), data)
}
