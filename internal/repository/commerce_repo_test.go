package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vcp_backend_v1_202609/internal/model"
)

// ==================== 测试辅助 ====================

func setupRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&model.BusinessOwner{}, &model.Ville{}, &model.Commerce{},
		&model.Category{}, &model.Product{}, &model.Detail{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// seedTwoCommerces 两个商户各一条完整链路
func seedTwoCommerces(t *testing.T, db *gorm.DB) {
	t.Helper()

	records := []interface{}{
		&model.BusinessOwner{BaseModel: model.BaseModel{ID: 1}, UserID: 1, Name: "A"},
		&model.BusinessOwner{BaseModel: model.BaseModel{ID: 2}, UserID: 2, Name: "B"},
		&model.Ville{BaseModel: model.BaseModel{ID: 1}, Name: "Yaounde"},
		&model.Commerce{BaseModel: model.BaseModel{ID: 1}, BusinessOwnerID: 1, VilleID: 1, CommerceName: "Shop A"},
		&model.Commerce{BaseModel: model.BaseModel{ID: 2}, BusinessOwnerID: 2, VilleID: 1, CommerceName: "Shop B"},
		&model.Category{BaseModel: model.BaseModel{ID: 1}, CommerceID: 1, CategoryName: "Cat A"},
		&model.Category{BaseModel: model.BaseModel{ID: 2}, CommerceID: 2, CategoryName: "Cat B"},
		&model.Product{BaseModel: model.BaseModel{ID: 1}, CategoryID: 1, ProductName: "Prod A"},
		&model.Product{BaseModel: model.BaseModel{ID: 2}, CategoryID: 2, ProductName: "Prod B"},
		&model.Detail{BaseModel: model.BaseModel{ID: 1}, ProductID: 1, DetailName: "Det A"},
		&model.Detail{BaseModel: model.BaseModel{ID: 2}, ProductID: 2, DetailName: "Det B"},
	}
	for _, rec := range records {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("种子数据写入失败: %v", err)
		}
	}
}

// ==================== 单元测试 ====================

func TestCommerceRepo_GetByIDForOwner(t *testing.T) {
	db := setupRepoTestDB(t)
	seedTwoCommerces(t, db)
	repo := NewCommerceRepository(db)

	// 本人的商铺能查到
	commerce, err := repo.GetByIDForOwner(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if commerce == nil || commerce.CommerceName != "Shop A" {
		t.Errorf("commerce = %v, want Shop A", commerce)
	}

	// 别人的商铺等同于不存在: (nil, nil)
	commerce, err = repo.GetByIDForOwner(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if commerce != nil {
		t.Errorf("跨商户查询返回了 %v, want nil", commerce)
	}

	// 完全不存在的 id 同样 (nil, nil)
	commerce, err = repo.GetByIDForOwner(context.Background(), 99, 1)
	if err != nil || commerce != nil {
		t.Errorf("commerce = %v, err = %v, want nil/nil", commerce, err)
	}
}

func TestCommerceRepo_Delete_Cascades(t *testing.T) {
	db := setupRepoTestDB(t)
	seedTwoCommerces(t, db)
	repo := NewCommerceRepository(db)

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// 商铺 1 的整条子树被删
	var categories int64
	db.Model(&model.Category{}).Where("commerce_id = ?", 1).Count(&categories)
	if categories != 0 {
		t.Errorf("categories 残留 %d 行, want 0", categories)
	}
	var products int64
	db.Model(&model.Product{}).Where("category_id = ?", 1).Count(&products)
	if products != 0 {
		t.Errorf("products 残留 %d 行, want 0", products)
	}
	var details int64
	db.Model(&model.Detail{}).Where("product_id = ?", 1).Count(&details)
	if details != 0 {
		t.Errorf("details 残留 %d 行, want 0", details)
	}

	// 商铺 2 的子树不受影响
	var otherDetails int64
	db.Model(&model.Detail{}).Where("product_id = ?", 2).Count(&otherDetails)
	if otherDetails != 1 {
		t.Errorf("商铺 2 的明细 = %d 行, want 1", otherDetails)
	}
}

func TestCommerceRepo_ListByVille(t *testing.T) {
	db := setupRepoTestDB(t)
	seedTwoCommerces(t, db)
	repo := NewCommerceRepository(db)

	commerces, err := repo.ListByVille(context.Background(), 1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(commerces) != 2 {
		t.Errorf("count = %d, want 2", len(commerces))
	}
}

func TestCategoryRepo_Delete_Cascades(t *testing.T) {
	db := setupRepoTestDB(t)
	seedTwoCommerces(t, db)
	repo := NewCategoryRepository(db)

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	var products int64
	db.Model(&model.Product{}).Where("category_id = ?", 1).Count(&products)
	if products != 0 {
		t.Errorf("products 残留 %d 行, want 0", products)
	}
	var details int64
	db.Model(&model.Detail{}).Where("product_id = ?", 1).Count(&details)
	if details != 0 {
		t.Errorf("details 残留 %d 行, want 0", details)
	}

	// 商铺本身不动
	var commerces int64
	db.Model(&model.Commerce{}).Count(&commerces)
	if commerces != 2 {
		t.Errorf("commerces = %d 行, want 2", commerces)
	}
}
