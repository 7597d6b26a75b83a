package service

import (
	"context"
	"errors"
	"testing"

	"vcp_backend_v1_202609/internal/repository"
)

// ==================== 单元测试 ====================

func TestPublicCatalog_IgnoresGate(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, false) // 商户未付费

	svc := NewPublicCatalogService(
		repository.NewBusinessOwnerRepository(db),
		repository.NewCommerceRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
		repository.NewDetailRepository(db),
	)

	// 公开读取不过订阅闸门，未付费商户的目录照常可见
	categories, err := svc.ListCategories(context.Background(), 1)
	if err != nil {
		t.Fatalf("公开分类查询失败: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("categories = %d, want 1", len(categories))
	}

	products, err := svc.ListProducts(context.Background(), 1)
	if err != nil {
		t.Fatalf("公开商品查询失败: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("products = %d, want 1", len(products))
	}
}

func TestPublicCatalog_MissingParent(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, true)

	svc := NewPublicCatalogService(
		repository.NewBusinessOwnerRepository(db),
		repository.NewCommerceRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
		repository.NewDetailRepository(db),
	)

	// 父级不存在时报 404，不返回空列表
	_, err := svc.ListProducts(context.Background(), 99)

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "category" {
		t.Fatalf("err = %v, want category NotFoundError", err)
	}
}

func TestPublicCatalog_GetOwner(t *testing.T) {
	db := setupServiceTestDB(t)
	seedChain(t, db, false)

	svc := NewPublicCatalogService(
		repository.NewBusinessOwnerRepository(db),
		repository.NewCommerceRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
		repository.NewDetailRepository(db),
	)

	owner, err := svc.GetOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("公开商户查询失败: %v", err)
	}
	if owner.Name != "Owner One" {
		t.Errorf("name = %s, want Owner One", owner.Name)
	}
}
