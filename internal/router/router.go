package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vcp_backend_v1_202609/internal/controller"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/model"
)

// ==================== 路由注册 ====================

// Controllers 路由需要的全部控制器
type Controllers struct {
	Auth     *controller.AuthController
	Owner    *controller.OwnerController
	Commerce *controller.CommerceController
	Category *controller.CategoryController
	Product  *controller.ProductController
	Detail   *controller.DetailController
	Payment  *controller.PaymentController
	Ville    *controller.VilleController
	Public   *controller.PublicController
}

// CORSMiddleware 与原有前端保持一致的跨域配置
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8100"},
		AllowMethods:     []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// SetupRouter 创建引擎并挂好全部路由
func SetupRouter(ctls *Controllers) *gin.Engine {
	r := gin.Default()
	InitRoutes(r, ctls)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	r.Use(CORSMiddleware())

	api := r.Group("/api")
	{
		// users 注册登录
		users := api.Group("/users")
		{
			// POST /api/users/register
			users.POST("/register", ctls.Auth.Register)
			users.POST("/login", ctls.Auth.Login)
			users.POST("/refresh", ctls.Auth.RefreshToken)
		}

		// business-owners 商户档案
		owners := api.Group("/business-owners")
		{
			// 公开的商户主页，不需要登录
			owners.GET("/public-business-owner/:id", ctls.Public.GetOwner)

			authed := owners.Group("", middleware.JWTAuth())
			{
				authed.POST("/create-business-owner", ctls.Owner.Create)
				authed.GET("/get-business-owner", ctls.Owner.Get)
				authed.PUT("/update-business-owner", ctls.Owner.Update)
				authed.PUT("/update-business-owner-image", ctls.Owner.UpdateImage)
				authed.GET("/get-business-owner-image", ctls.Owner.GetImage)
				authed.DELETE("/delete-business-owner", ctls.Owner.Delete)
				authed.GET("/find-business-owner/:email", middleware.RequireRole(model.RoleAdmin), ctls.Owner.FindByEmail)
			}
		}

		// my-commerces 商铺，整组需要登录
		commerces := api.Group("/my-commerces", middleware.JWTAuth())
		{
			commerces.POST("", ctls.Commerce.Create)
			commerces.GET("", ctls.Commerce.List)
			commerces.GET("/:commerceId", ctls.Commerce.Get)
			commerces.PUT("/:commerceId", ctls.Commerce.Update)
			commerces.DELETE("/:commerceId", ctls.Commerce.Delete)
			commerces.GET("/:commerceId/image", ctls.Commerce.GetImage)
		}

		// categories 分类
		categories := api.Group("/categories", middleware.JWTAuth())
		{
			categories.POST("", ctls.Category.Create)
			categories.GET("/:commerceId", ctls.Category.ListByCommerce)
			categories.GET("/:commerceId/:categoryId", ctls.Category.Get)
			categories.PUT("/:commerceId/:categoryId", ctls.Category.Update)
			categories.DELETE("/:commerceId/:categoryId", ctls.Category.Delete)
			categories.GET("/:commerceId/:categoryId/image", ctls.Category.GetImage)
		}

		// products 商品，路径携带完整链路
		products := api.Group("/products", middleware.JWTAuth())
		{
			products.POST("/:commerceId/:categoryId", ctls.Product.Create)
			products.GET("/:commerceId/:categoryId", ctls.Product.ListByCategory)
			products.GET("/:commerceId/:categoryId/:productId", ctls.Product.Get)
			products.PUT("/:commerceId/:categoryId/:productId", ctls.Product.Update)
			products.DELETE("/:commerceId/:categoryId/:productId", ctls.Product.Delete)
			products.GET("/:commerceId/:categoryId/:productId/image", ctls.Product.GetImage)
		}

		// details 明细
		details := api.Group("/details", middleware.JWTAuth())
		{
			details.POST("/:commerceId/:categoryId/:productId", ctls.Detail.Create)
			details.GET("/:commerceId/:categoryId/:productId", ctls.Detail.ListByProduct)
			details.GET("/:commerceId/:categoryId/:productId/:detailId", ctls.Detail.Get)
			details.PUT("/:commerceId/:categoryId/:productId/:detailId", ctls.Detail.Update)
			details.DELETE("/:commerceId/:categoryId/:productId/:detailId", ctls.Detail.Delete)
		}

		// payments 月费支付，登记与扫描仅管理员
		payments := api.Group("/payments", middleware.JWTAuth())
		{
			payments.POST("", middleware.RequireRole(model.RoleAdmin), ctls.Payment.Record)
			payments.GET("/my", ctls.Payment.ListMine)
			payments.GET("/owner/:ownerId", middleware.RequireRole(model.RoleAdmin), ctls.Payment.ListByOwner)
			payments.POST("/sweep", middleware.RequireRole(model.RoleAdmin), ctls.Payment.Sweep)
		}

		// villes 城市，列表公开
		villes := api.Group("/villes")
		{
			villes.GET("", ctls.Ville.List)
			villes.POST("", middleware.JWTAuth(), middleware.RequireRole(model.RoleAdmin), ctls.Ville.Create)
		}

		// public 访客只读目录
		public := api.Group("/public")
		{
			public.GET("/commerces/:commerceId", ctls.Public.GetCommerce)
			public.GET("/commerces/:commerceId/categories", ctls.Public.ListCategories)
			public.GET("/villes/:villeId/commerces", ctls.Public.ListCommercesByVille)
			public.GET("/categories/:categoryId/products", ctls.Public.ListProducts)
			public.GET("/products/:productId/details", ctls.Public.ListDetails)
			public.GET("/products/:productId/image", ctls.Public.GetProductImage)
		}
	}
}
