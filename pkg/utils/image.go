package utils

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
)

// 图片入库上限，与前端上传限制保持一致
const MaxImageSize = 5 << 20 // 5MB

// ErrImageTooLarge 上传图片超过入库上限
var ErrImageTooLarge = errors.New("Image exceeds the maximum allowed size of 5MB")

// ReadFormImage 从 multipart 表单读出图片字节
// 没有该字段时返回 (nil, nil)，由调用方决定是否必填
// 超过上限整体拒绝，绝不截断入库
func ReadFormImage(form *multipart.FileHeader) ([]byte, error) {
	if form == nil {
		return nil, nil
	}
	if form.Size > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	f, err := form.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Size 来自 multipart 解析，这里再按实际字节数兜底
	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

// ImageContentType 嗅探图片字节的 Content-Type
func ImageContentType(data []byte) string {
	return http.DetectContentType(data)
}

// EncodeImageBase64 列表载荷里的内联编码，空图返回空串
func EncodeImageBase64(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
