package service

import (
	"context"

	"vcp_backend_v1_202609/internal/model"
	"vcp_backend_v1_202609/internal/repository"
)

// ==================== ChainResolver 归属链解析 ====================

// ChainRequest 请求里出现的链路 id，0 表示该级不参与解析
// 层级严格嵌套：CategoryID 只在 CommerceID 已给出时有意义，依此类推
type ChainRequest struct {
	CommerceID int64
	CategoryID int64
	ProductID  int64
	DetailID   int64
}

// ResolvedChain 校验通过的链路实体
// 后续写操作一律以这里的 id 为准，不再信任请求参数里的父级 id
type ResolvedChain struct {
	Owner    *model.BusinessOwner
	Commerce *model.Commerce
	Category *model.Category
	Product  *model.Product
	Detail   *model.Detail
}

// ChainResolver 把散落在各控制器里的"查商户→查商铺→查分类→…"
// 链式校验收拢成一个入口，自顶向下、遇错即停
type ChainResolver struct {
	ownerRepo    repository.BusinessOwnerRepository
	commerceRepo repository.CommerceRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	detailRepo   repository.DetailRepository
	gate         *SubscriptionGate
}

// NewChainResolver 创建归属链解析器
func NewChainResolver(
	ownerRepo repository.BusinessOwnerRepository,
	commerceRepo repository.CommerceRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	detailRepo repository.DetailRepository,
	gate *SubscriptionGate,
) *ChainResolver {
	return &ChainResolver{
		ownerRepo:    ownerRepo,
		commerceRepo: commerceRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		detailRepo:   detailRepo,
		gate:         gate,
	}
}

// Resolve 解析并校验归属链，只读不写
//
// 步骤固定，后一步依赖前一步解析出的 id，不可重排：
//  1. userID -> BusinessOwner，缺失返回 NotFound(business owner)
//  2. 订阅闸门，关闭立即返回 ErrSubscriptionRequired，
//     不再向下查询，避免向未付费账号泄露子资源是否存在
//  3. CommerceID 按 (id, business_owner_id) 双键过滤
//  4. CategoryID/ProductID/DetailID 逐级用上一级解析结果的 id 过滤
func (r *ChainResolver) Resolve(ctx context.Context, userID int64, req ChainRequest) (*ResolvedChain, error) {
	owner, err := r.ownerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, NewNotFound("business owner")
	}

	if !r.gate.IsOpen(owner) {
		return nil, ErrSubscriptionRequired
	}

	chain := &ResolvedChain{Owner: owner}

	if req.CommerceID == 0 {
		return chain, nil
	}
	commerce, err := r.commerceRepo.GetByIDForOwner(ctx, req.CommerceID, owner.ID)
	if err != nil {
		return nil, err
	}
	if commerce == nil {
		return nil, NewNotFound("commerce")
	}
	chain.Commerce = commerce

	if req.CategoryID == 0 {
		return chain, nil
	}
	category, err := r.categoryRepo.GetByIDForCommerce(ctx, req.CategoryID, commerce.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewNotFound("category")
	}
	chain.Category = category

	if req.ProductID == 0 {
		return chain, nil
	}
	product, err := r.productRepo.GetByIDForCategory(ctx, req.ProductID, category.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, NewNotFound("product")
	}
	chain.Product = product

	if req.DetailID == 0 {
		return chain, nil
	}
	detail, err := r.detailRepo.GetByIDForProduct(ctx, req.DetailID, product.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, NewNotFound("detail")
	}
	chain.Detail = detail

	return chain, nil
}
