package admin

import "github.com/bazaar-next/internal/provider"

// Handler 后台接口处理器，挂载在 /api/v1/admin 下，
// 除登录外的路由都经过管理员鉴权与 RBAC 中间件
type Handler struct {
	*provider.Container
}

// New 基于依赖容器创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
