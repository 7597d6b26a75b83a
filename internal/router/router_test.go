package router

import (
	"testing"

	"github.com/gin-gonic/gin"
)

// ==================== 单元测试 ====================

// 路由注册本身就是测试对象：gin 对静态段与参数段冲突会直接 panic，
// 这里完整挂一遍并核对关键路径
func TestInitRoutes_Table(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	InitRoutes(r, &Controllers{})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/users/register",
		"POST /api/users/login",
		"POST /api/business-owners/create-business-owner",
		"PUT /api/business-owners/update-business-owner-image",
		"GET /api/business-owners/find-business-owner/:email",
		"GET /api/business-owners/public-business-owner/:id",
		"GET /api/categories/:commerceId",
		"PUT /api/products/:commerceId/:categoryId/:productId",
		"DELETE /api/details/:commerceId/:categoryId/:productId/:detailId",
		"POST /api/payments/sweep",
		"GET /api/public/products/:productId/image",
	}
	for _, key := range want {
		if !registered[key] {
			t.Errorf("路由表缺少 %s", key)
		}
	}
}
