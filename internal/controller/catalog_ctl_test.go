package controller

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vcp_backend_v1_202609/internal/middleware"
	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
	"vcp_backend_v1_202609/internal/service"
	"vcp_backend_v1_202609/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupCtlTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{}, &model.BusinessOwner{}, &model.AccessControl{},
		&model.Payment{}, &model.Ville{}, &model.Commerce{},
		&model.Category{}, &model.Product{}, &model.Detail{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// setupCatalogRouter 真实 service + repo 直达 sqlite，路由布局与生产一致
func setupCatalogRouter(db *gorm.DB) *gin.Engine {
	ownerRepo := repository.NewBusinessOwnerRepository(db)
	commerceRepo := repository.NewCommerceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	detailRepo := repository.NewDetailRepository(db)

	gate := service.NewSubscriptionGate()
	resolver := service.NewChainResolver(
		ownerRepo, commerceRepo, categoryRepo, productRepo, detailRepo, gate,
	)

	commerceCtl := NewCommerceController(
		service.NewCommerceService(resolver, commerceRepo, repository.NewVilleRepository(db)))
	categoryCtl := NewCategoryController(service.NewCategoryService(resolver, categoryRepo))
	productCtl := NewProductController(service.NewProductService(resolver, productRepo))
	publicCtl := NewPublicController(service.NewPublicCatalogService(
		ownerRepo, commerceRepo, categoryRepo, productRepo, detailRepo,
	))

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	commerces := api.Group("/my-commerces", middleware.JWTAuth())
	{
		commerces.POST("", commerceCtl.Create)
		commerces.GET("", commerceCtl.List)
		commerces.GET("/:commerceId", commerceCtl.Get)
		commerces.DELETE("/:commerceId", commerceCtl.Delete)
	}

	categories := api.Group("/categories", middleware.JWTAuth())
	{
		categories.POST("", categoryCtl.Create)
		categories.PUT("/:commerceId/:categoryId", categoryCtl.Update)
	}

	products := api.Group("/products", middleware.JWTAuth())
	{
		products.GET("/:commerceId/:categoryId", productCtl.ListByCategory)
		products.PUT("/:commerceId/:categoryId/:productId", productCtl.Update)
	}

	public := api.Group("/public")
	{
		public.GET("/categories/:categoryId/products", publicCtl.ListProducts)
		public.GET("/products/:productId/image", publicCtl.GetProductImage)
	}

	return r
}

// seedCatalog 一个付费商户和一个未付费商户，各挂一条链
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	records := []interface{}{
		&model.User{BaseModel: model.BaseModel{ID: 1}, Email: "paid@test.com", Password: "x"},
		&model.User{BaseModel: model.BaseModel{ID: 2}, Email: "unpaid@test.com", Password: "x"},
		&model.BusinessOwner{BaseModel: model.BaseModel{ID: 1}, UserID: 1, Name: "Paid", MonthlyFeePaid: true},
		&model.BusinessOwner{BaseModel: model.BaseModel{ID: 2}, UserID: 2, Name: "Unpaid", MonthlyFeePaid: false},
		&model.Ville{BaseModel: model.BaseModel{ID: 1}, Name: "Douala"},
		&model.Commerce{BaseModel: model.BaseModel{ID: 1}, BusinessOwnerID: 1, VilleID: 1, CommerceName: "Shop Paid"},
		&model.Commerce{BaseModel: model.BaseModel{ID: 2}, BusinessOwnerID: 2, VilleID: 1, CommerceName: "Shop Unpaid"},
		&model.Category{BaseModel: model.BaseModel{ID: 1}, CommerceID: 1, CategoryName: "Drinks"},
		&model.Product{BaseModel: model.BaseModel{ID: 1}, CategoryID: 1, ProductName: "Cola",
			ImageProduct: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}},
	}
	for _, rec := range records {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("种子数据写入失败: %v", err)
		}
	}
}

func authHeader(t *testing.T, userID int64, email string) string {
	t.Helper()
	token, err := middleware.GenerateAccessToken(userID, email, model.RoleOwner)
	if err != nil {
		t.Fatalf("签发测试 token 失败: %v", err)
	}
	return "Bearer " + token
}

func doJSON(r http.Handler, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBytes)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart 发送单文件 multipart 请求
func doMultipart(t *testing.T, r http.Handler, method, path, auth, field string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "upload.bin")
	if err != nil {
		t.Fatalf("构造 multipart 请求失败: %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("写入 multipart 图片失败: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 测试用例 ====================

func TestCommerceController_Create(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	w := doJSON(router, http.MethodPost, "/api/my-commerces", authHeader(t, 1, "paid@test.com"),
		map[string]interface{}{"commerce_name": "Second Shop", "ville_id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&model.Commerce{}).Where("business_owner_id = ?", 1).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCommerceController_Create_Unauthenticated(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	w := doJSON(router, http.MethodPost, "/api/my-commerces", "",
		map[string]interface{}{"commerce_name": "X", "ville_id": 1})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommerceController_Create_GateClosed(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	// 未付费商户被闸门挡在 403
	w := doJSON(router, http.MethodPost, "/api/my-commerces", authHeader(t, 2, "unpaid@test.com"),
		map[string]interface{}{"commerce_name": "X", "ville_id": 1})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Monthly fee not paid", resp["error"])
}

func TestCommerceController_Get_ForeignCommerce(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	// 商户 1 取商户 2 的商铺，404 而非 403
	w := doJSON(router, http.MethodGet, "/api/my-commerces/2", authHeader(t, 1, "paid@test.com"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Commerce not found or does not belong to the business owner", resp["error"])
}

func TestCategoryController_Update_ForeignCommercePath(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	// 路径上的 commerceId 属于别人，分类真实存在也必须 404
	name := "Renamed"
	w := doJSON(router, http.MethodPut, "/api/categories/2/1", authHeader(t, 1, "paid@test.com"),
		map[string]interface{}{"category_name": name})

	assert.Equal(t, http.StatusNotFound, w.Code)

	// 分类没有被改动
	var category model.Category
	db.First(&category, 1)
	assert.Equal(t, "Drinks", category.CategoryName)
}

func TestProductController_List_WrongParent(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	// category 1 实际挂在 commerce 1 下，路径写 commerce 2 解析必须失败
	w := doJSON(router, http.MethodGet, "/api/products/2/1", authHeader(t, 1, "paid@test.com"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 正确的父级路径可以列出
	w = doJSON(router, http.MethodGet, "/api/products/1/1", authHeader(t, 1, "paid@test.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	json.Unmarshal(w.Body.Bytes(), &products)
	assert.Len(t, products, 1)
}

func TestCommerceController_Delete_Cascades(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	w := doJSON(router, http.MethodDelete, "/api/my-commerces/1", authHeader(t, 1, "paid@test.com"), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var categories, products int64
	db.Model(&model.Category{}).Where("commerce_id = ?", 1).Count(&categories)
	db.Model(&model.Product{}).Where("category_id = ?", 1).Count(&products)
	assert.Equal(t, int64(0), categories)
	assert.Equal(t, int64(0), products)
}

func TestPublicController_ListProducts_Base64Image(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	// 公开列表不需要登录，图片是 base64 文本
	w := doJSON(router, http.MethodGet, "/api/public/categories/1/products", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []struct {
		ProductName  string `json:"product_name"`
		ImageProduct string `json:"image_product"`
	}
	json.Unmarshal(w.Body.Bytes(), &views)
	assert.Len(t, views, 1)
	assert.Equal(t, "Cola", views[0].ProductName)

	decoded, err := base64.StdEncoding.DecodeString(views[0].ImageProduct)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}, decoded)
}

func TestPublicController_GetProductImage_RawBinary(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/public/products/1/image", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}, w.Body.Bytes())
}

func TestProductController_UploadImage_PublicRoundTrip(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	// multipart 上传一张 PNG，替换种子里的 JPEG
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x42}, 2048)...)
	w := doMultipart(t, router, http.MethodPut, "/api/products/1/1/1",
		authHeader(t, 1, "paid@test.com"), "image_product", png)
	assert.Equal(t, http.StatusOK, w.Code)

	// 原始二进制出图与上传字节逐一相等
	req := httptest.NewRequest(http.MethodGet, "/api/public/products/1/image", nil)
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusOK, raw.Code)
	assert.Equal(t, "image/png", raw.Header().Get("Content-Type"))
	assert.Equal(t, png, raw.Body.Bytes())

	// 公开列表里的 base64 解码后同样相等
	w = doJSON(router, http.MethodGet, "/api/public/categories/1/products", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []struct {
		ImageProduct string `json:"image_product"`
	}
	json.Unmarshal(w.Body.Bytes(), &views)
	assert.Len(t, views, 1)

	decoded, err := base64.StdEncoding.DecodeString(views[0].ImageProduct)
	assert.NoError(t, err)
	assert.Equal(t, png, decoded)
}

func TestProductController_UploadImage_TooLarge(t *testing.T) {
	db := setupCtlTestDB(t)
	seedCatalog(t, db)
	router := setupCatalogRouter(db)

	oversized := make([]byte, utils.MaxImageSize+1)
	w := doMultipart(t, router, http.MethodPut, "/api/products/1/1/1",
		authHeader(t, 1, "paid@test.com"), "image_product", oversized)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, utils.ErrImageTooLarge.Error(), resp["error"])

	// 原图保持不变，没有被截断覆盖
	var product model.Product
	db.First(&product, 1)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}, product.ImageProduct)
}
