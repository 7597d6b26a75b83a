package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"vcp_backend_v1_202609/internal/controller"
	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
	"vcp_backend_v1_202609/internal/router"
	"vcp_backend_v1_202609/internal/service"
	"vcp_backend_v1_202609/internal/task"
	"vcp_backend_v1_202609/pkg/database"
)

func main() {
	// 0. 加载 .env，生产环境直接用系统变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 1. JWT 配置
	initJWT()

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 启动定时任务（启动时先跑一轮过期扫描）
	expiryTask := initTasks(deps)
	defer expiryTask.Stop()

	// 5. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 6. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Owner    repository.BusinessOwnerRepository
	Commerce repository.CommerceRepository
	Category repository.CategoryRepository
	Product  repository.ProductRepository
	Detail   repository.DetailRepository
	Payment  repository.PaymentRepository
	Access   repository.AccessControlRepository
	Ville    repository.VilleRepository
}

// Services 服务集合
type Services struct {
	Auth     *service.AuthService
	Owner    *service.OwnerService
	Commerce *service.CommerceService
	Category *service.CategoryService
	Product  *service.ProductService
	Detail   *service.DetailService
	Payment  *service.PaymentService
	Ville    *service.VilleService
	Public   *service.PublicCatalogService
}

// ==================== 初始化函数 ====================

// initJWT 读取 JWT 环境配置
func initJWT() {
	cfg := middleware.DefaultJWTConfig()
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.SecretKey = secret
	}
	middleware.SetJWTConfig(cfg)
}

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "vcp_admin"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "vcp_backend"),
		getEnv("DB_PORT", "5432"),
	)

	return database.InitDB(dsn,
		// Account
		&model.User{}, &model.BusinessOwner{}, &model.AccessControl{},
		// Billing
		&model.Payment{},
		// Catalog
		&model.Ville{}, &model.Commerce{}, &model.Category{},
		&model.Product{}, &model.Detail{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 付费闸门与归属链 --------
	gate := service.NewSubscriptionGate()
	resolver := service.NewChainResolver(
		repos.Owner, repos.Commerce, repos.Category,
		repos.Product, repos.Detail, gate,
	)

	// -------- 业务服务 --------
	services := &Services{
		Auth:     service.NewAuthService(repos.User),
		Owner:    service.NewOwnerService(repos.Owner, repos.User, repos.Access),
		Commerce: service.NewCommerceService(resolver, repos.Commerce, repos.Ville),
		Category: service.NewCategoryService(resolver, repos.Category),
		Product:  service.NewProductService(resolver, repos.Product),
		Detail:   service.NewDetailService(resolver, repos.Detail, gate),
		Payment:  service.NewPaymentService(repos.Payment, repos.Owner),
		Ville:    service.NewVilleService(repos.Ville),
		Public: service.NewPublicCatalogService(
			repos.Owner, repos.Commerce, repos.Category,
			repos.Product, repos.Detail,
		),
	}

	return &Dependencies{
		DB:       db,
		Repos:    repos,
		Services: services,
	}
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     repository.NewUserRepository(db),
		Owner:    repository.NewBusinessOwnerRepository(db),
		Commerce: repository.NewCommerceRepository(db),
		Category: repository.NewCategoryRepository(db),
		Product:  repository.NewProductRepository(db),
		Detail:   repository.NewDetailRepository(db),
		Payment:  repository.NewPaymentRepository(db),
		Access:   repository.NewAccessControlRepository(db),
		Ville:    repository.NewVilleRepository(db),
	}
}

// initControllers 初始化所有控制器
func initControllers(svc *Services, sweeper controller.Sweeper) *router.Controllers {
	return &router.Controllers{
		Auth:     controller.NewAuthController(svc.Auth),
		Owner:    controller.NewOwnerController(svc.Owner),
		Commerce: controller.NewCommerceController(svc.Commerce),
		Category: controller.NewCategoryController(svc.Category),
		Product:  controller.NewProductController(svc.Product),
		Detail:   controller.NewDetailController(svc.Detail),
		Payment:  controller.NewPaymentController(svc.Payment, sweeper),
		Ville:    controller.NewVilleController(svc.Ville),
		Public:   controller.NewPublicController(svc.Public),
	}
}

// ==================== 定时任务 ====================

// initTasks 启动过期扫描任务并把控制器挂上手动触发入口
func initTasks(deps *Dependencies) *task.PaymentExpiryTask {
	expiryTask := task.NewPaymentExpiryTask(
		deps.Repos.Payment,
		deps.Repos.Owner,
		deps.Repos.Access,
	)
	expiryTask.Start()

	deps.Controllers = initControllers(deps.Services, expiryTask)

	log.Println("定时任务已启动")
	return expiryTask
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
