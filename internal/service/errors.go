package service

import (
	"errors"
	"fmt"
)

// ==================== 错误定义 ====================

// 对外文案只说"哪一级没找到"，不区分"不存在"和"属于别人"，
// 防止未授权方探测资源是否存在
var (
	ErrSubscriptionRequired = errors.New("Monthly fee not paid")
	ErrEmailExists          = errors.New("User with this email already exists")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrOwnerExists          = errors.New("Business owner already exists for this user")
	ErrNoImage              = errors.New("No image file provided")
)

// NotFoundError 归属链上某一级缺失或不属于当前调用者
type NotFoundError struct {
	Entity string // business owner / commerce / category / product / detail ...
}

func (e *NotFoundError) Error() string {
	switch e.Entity {
	case "commerce":
		return "Commerce not found or does not belong to the business owner"
	case "category":
		return "Category not found or does not belong to the commerce"
	case "product":
		return "Product not found or does not belong to the category"
	case "detail":
		return "Detail not found or does not belong to the product"
	default:
		return fmt.Sprintf("%s not found", capitalize(e.Entity))
	}
}

// NewNotFound 构造某一级的未找到错误
func NewNotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ValidationError 请求字段缺失或非法
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
