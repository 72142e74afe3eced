package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/bazaar-next/internal/cache"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// NormalizeSlug 规范化 slug；为空时由名称生成
func NormalizeSlug(slug, fallbackName string) string {
	value := strings.ToLower(strings.TrimSpace(slug))
	if value == "" {
		value = strings.ToLower(strings.TrimSpace(fallbackName))
	}
	value = slugInvalidChars.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// IsValidSlug 校验 slug 格式（小写字母数字，短横线分隔）
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

func resolveSlug(slug, name string) (string, error) {
	value := NormalizeSlug(slug, name)
	if !IsValidSlug(value) {
		return "", ErrInvalidInput
	}
	return value, nil
}

// invalidatePublicCache 后台写操作后清理前台缓存
func invalidatePublicCache() {
	cache.InvalidatePublic(context.Background())
}
