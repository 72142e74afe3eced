package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/bazaar-next/internal/constants"
)

// LocalURLPrefix 本地文件对外访问前缀
const LocalURLPrefix = "/uploads"

// LocalStorage 本地磁盘存储，文件通过 /uploads 静态路由访问
type LocalStorage struct {
	dir string
}

// NewLocalStorage 创建本地存储
func NewLocalStorage(dir string) *LocalStorage {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalStorage{dir: dir}
}

// Dir 本地根目录
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Driver 驱动名称
func (s *LocalStorage) Driver() string {
	return constants.UploadDriverLocal
}

// Save 写入文件并返回相对 URL
func (s *LocalStorage) Save(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	key = cleanKey(key)
	savePath := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", err
	}
	return LocalURLPrefix + "/" + key, nil
}
