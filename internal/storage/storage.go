// Package storage 上传文件的存储后端：本地磁盘或 S3 兼容对象存储。
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
)

// Storage 文件存储接口，key 形如 banner/2025/01/<uuid>.png
type Storage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Driver() string
}

// New 按配置创建存储后端
func New(ctx context.Context, cfg config.UploadConfig) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", constants.UploadDriverLocal:
		return NewLocalStorage(cfg.Dir), nil
	case constants.UploadDriverS3:
		return NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported upload driver: %s", cfg.Driver)
	}
}

func cleanKey(key string) string {
	return strings.TrimLeft(strings.ReplaceAll(key, "\\", "/"), "/")
}
