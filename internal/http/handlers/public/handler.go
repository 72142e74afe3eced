package public

import "github.com/bazaar-next/internal/provider"

// Handler 店铺前台与顾客账号接口处理器（/api/v1/public、/api/v1/auth）
type Handler struct {
	*provider.Container
}

// New 基于依赖容器创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
