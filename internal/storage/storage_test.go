package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir)

	url, err := store.Save(context.Background(), "/banner/2025/01/a.png", strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if url != "/uploads/banner/2025/01/a.png" {
		t.Fatalf("unexpected url: %s", url)
	}
	content, err := os.ReadFile(filepath.Join(dir, "banner", "2025", "01", "a.png"))
	if err != nil {
		t.Fatalf("read saved file failed: %v", err)
	}
	if string(content) != "png-bytes" {
		t.Fatalf("unexpected content: %s", content)
	}
}

func TestNewSelectsDriver(t *testing.T) {
	store, err := New(context.Background(), config.UploadConfig{Driver: "", Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("new local storage failed: %v", err)
	}
	if store.Driver() != constants.UploadDriverLocal {
		t.Fatalf("want local driver, got %s", store.Driver())
	}
	if _, err := New(context.Background(), config.UploadConfig{Driver: "ftp"}); err == nil {
		t.Fatalf("unknown driver should fail")
	}
	if _, err := New(context.Background(), config.UploadConfig{Driver: constants.UploadDriverS3}); err == nil {
		t.Fatalf("s3 without bucket should fail")
	}
}

func TestS3KeyAndPublicURL(t *testing.T) {
	store := &S3Storage{bucket: "shop", prefix: "uploads", publicBaseURL: "https://cdn.example.com"}
	key := store.objectKey("/product/2025/02/x.webp")
	if key != "uploads/product/2025/02/x.webp" {
		t.Fatalf("unexpected object key: %s", key)
	}
	if got := store.publicURL(key, "https://shop.s3.amazonaws.com/"+key); got != "https://cdn.example.com/uploads/product/2025/02/x.webp" {
		t.Fatalf("public base url should win, got %s", got)
	}

	store.publicBaseURL = ""
	location := "https://shop.s3.amazonaws.com/" + key
	if got := store.publicURL(key, location); got != location {
		t.Fatalf("should fall back to upload location, got %s", got)
	}
}
