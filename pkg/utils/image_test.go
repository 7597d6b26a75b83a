package utils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"
)

// ==================== 测试辅助 ====================

// makeImageForm 构造一个带图片文件的 multipart 表单字段
func makeImageForm(t *testing.T, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", "pic.bin")
	if err != nil {
		t.Fatalf("创建表单文件失败: %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("写入表单文件失败: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("解析 multipart 表单失败: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["image"][0]
}

// ==================== 单元测试 ====================

func TestImageContentType(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	if got := ImageContentType(jpeg); got != "image/jpeg" {
		t.Errorf("content type = %s, want image/jpeg", got)
	}

	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if got := ImageContentType(png); got != "image/png" {
		t.Errorf("content type = %s, want image/png", got)
	}
}

func TestEncodeImageBase64(t *testing.T) {
	if got := EncodeImageBase64(nil); got != "" {
		t.Errorf("空图编码 = %q, want 空串", got)
	}

	if got := EncodeImageBase64([]byte{1, 2, 3}); got != "AQID" {
		t.Errorf("编码 = %s, want AQID", got)
	}
}

func TestReadFormImage_Nil(t *testing.T) {
	data, err := ReadFormImage(nil)
	if err != nil || data != nil {
		t.Errorf("nil 表单字段应返回 (nil, nil)，got (%v, %v)", data, err)
	}
}

func TestReadFormImage_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB, 0xCD}, 32<<10)

	data, err := ReadFormImage(makeImageForm(t, payload))
	if err != nil {
		t.Fatalf("读取表单图片失败: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("读出字节与上传字节不一致: len=%d, want %d", len(data), len(payload))
	}
}

func TestReadFormImage_AtLimit(t *testing.T) {
	payload := make([]byte, MaxImageSize)

	data, err := ReadFormImage(makeImageForm(t, payload))
	if err != nil {
		t.Fatalf("恰好达到上限的图片应被接受: %v", err)
	}
	if len(data) != MaxImageSize {
		t.Errorf("读出 %d 字节, want %d", len(data), MaxImageSize)
	}
}

func TestReadFormImage_TooLarge(t *testing.T) {
	payload := make([]byte, MaxImageSize+1)

	data, err := ReadFormImage(makeImageForm(t, payload))
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("超限图片应返回 ErrImageTooLarge, got err=%v", err)
	}
	if data != nil {
		t.Errorf("超限时不应返回任何字节，got %d 字节", len(data))
	}
}
