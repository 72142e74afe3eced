package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/storage"
)

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer failed: %v", err)
	}
	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form failed: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png failed: %v", err)
	}
	return buf.Bytes()
}

// webpBytes 拼出 RIFF/WEBP 容器，chunkSize 写入块头，body 为实际块内容
func webpBytes(chunkType string, chunkSize uint32, body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(4+8+len(body)))
	buf.WriteString("WEBP")
	buf.WriteString(chunkType)
	_ = binary.Write(&buf, binary.LittleEndian, chunkSize)
	buf.Write(body)
	return buf.Bytes()
}

// vp8xBody 宽高按 VP8X 规则以 (值-1) 的 24 位小端存储
func vp8xBody(width, height int) []byte {
	w, h := width-1, height-1
	return []byte{0, 0, 0, 0, byte(w), byte(w >> 8), byte(w >> 16), byte(h), byte(h >> 8), byte(h >> 16)}
}

func newTestUploadService(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewUploadService(config.UploadConfig{
		MaxSize:           1 << 20,
		AllowedTypes:      []string{"image/png", "image/jpeg"},
		AllowedExtensions: []string{".png", "jpg"},
		MaxWidth:          100,
		MaxHeight:         100,
	}, storage.NewLocalStorage(dir))
	svc.now = func() time.Time { return time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC) }
	return svc, dir
}

func TestUploadSaveFileLocal(t *testing.T) {
	svc, dir := newTestUploadService(t)
	header := buildFileHeader(t, "hero.PNG", pngBytes(t, 20, 10))

	result, err := svc.SaveFile(context.Background(), header, "banner")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}
	if !strings.HasPrefix(result.URL, "/uploads/banner/2025/01/") || !strings.HasSuffix(result.URL, ".png") {
		t.Fatalf("unexpected url: %s", result.URL)
	}
	if result.Size != header.Size {
		t.Fatalf("size mismatch: %d vs %d", result.Size, header.Size)
	}
	if _, err := os.Stat(filepath.Join(dir, "banner", "2025", "01", result.Filename)); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestUploadSaveFileRejections(t *testing.T) {
	svc, _ := newTestUploadService(t)
	ctx := context.Background()

	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "a.png", pngBytes(t, 5, 5)), "avatar"); !errors.Is(err, ErrUploadSceneInvalid) {
		t.Fatalf("want ErrUploadSceneInvalid, got %v", err)
	}
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "a.gif", pngBytes(t, 5, 5)), "cms"); !errors.Is(err, ErrUploadTypeNotAllowed) {
		t.Fatalf("want extension rejection, got %v", err)
	}
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "a.png", []byte("plain text body")), "cms"); !errors.Is(err, ErrUploadTypeNotAllowed) {
		t.Fatalf("want mime rejection, got %v", err)
	}
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "big.png", pngBytes(t, 200, 20)), "product"); !errors.Is(err, ErrUploadDimensionExceeded) {
		t.Fatalf("want dimension rejection, got %v", err)
	}

	svc.cfg.AllowedTypes = append(svc.cfg.AllowedTypes, "image/webp")
	svc.cfg.AllowedExtensions = append(svc.cfg.AllowedExtensions, ".webp")
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "bomb.webp", webpBytes("VP8X", 0xFFFFFFF0, vp8xBody(5, 5))), "cms"); !errors.Is(err, ErrUploadTypeNotAllowed) {
		t.Fatalf("want oversized webp chunk rejection, got %v", err)
	}
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "wide.webp", webpBytes("VP8X", 10, vp8xBody(300, 5))), "cms"); !errors.Is(err, ErrUploadDimensionExceeded) {
		t.Fatalf("want webp dimension rejection, got %v", err)
	}
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "ok.webp", webpBytes("VP8X", 10, vp8xBody(40, 30))), "cms"); err != nil {
		t.Fatalf("small webp should be accepted: %v", err)
	}

	svc.cfg.MaxSize = 10
	if _, err := svc.SaveFile(ctx, buildFileHeader(t, "a.png", pngBytes(t, 5, 5)), "cms"); !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("want ErrUploadTooLarge, got %v", err)
	}
}
