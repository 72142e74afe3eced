package cache

import (
	"context"
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
)

// publicCacheTTL 前台聚合数据缓存时长
const publicCacheTTL = 5 * time.Minute

// GetOrLoad 读取缓存，未命中时调用 loader 并回写；缓存故障不影响主流程
func GetOrLoad[T any](ctx context.Context, key string, loader func() (T, error)) (T, error) {
	var cached T
	hit, err := GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warnw("cache_get_failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	value, err := loader()
	if err != nil {
		return value, err
	}
	if err := SetJSON(ctx, key, value, publicCacheTTL); err != nil {
		logger.Warnw("cache_set_failed", "key", key, "error", err)
	}
	return value, nil
}

// InvalidatePublic 清理前台聚合缓存（站点配置、首页、分类树）
func InvalidatePublic(ctx context.Context) {
	err := Del(ctx,
		constants.CacheKeySiteConfig,
		constants.CacheKeyHomePage,
		constants.CacheKeyCategoryTree,
	)
	if err != nil {
		logger.Warnw("cache_invalidate_public_failed", "error", err)
	}
}
