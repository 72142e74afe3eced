package router

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/i18n"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/metrics"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// AdminTokenResolver 管理员 token 解析与状态校验
type AdminTokenResolver interface {
	ParseJWT(tokenString string) (*service.JWTClaims, error)
	ResolveAdminState(ctx context.Context, claims *service.JWTClaims) (*cache.AdminAuthState, error)
}

// UserTokenResolver 顾客 token 解析与状态校验
type UserTokenResolver interface {
	ParseUserJWT(tokenString string) (*service.UserJWTClaims, error)
	ResolveUserState(ctx context.Context, claims *service.UserJWTClaims) (*cache.UserAuthState, error)
}

// RoleEnforcer 按角色判定授权
type RoleEnforcer interface {
	EnforceRole(role, obj, act string) (bool, error)
}

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(buildCORSConfig(cfg))
}

func buildCORSConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}
	if len(corsCfg.AllowMethods) == 0 {
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(corsCfg.AllowHeaders) == 0 {
		corsCfg.AllowHeaders = []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			"Accept-Language",
			"Authorization",
			"X-Requested-With",
			requestIDHeader,
		}
	}
	if corsCfg.MaxAge <= 0 {
		corsCfg.MaxAge = 12 * time.Hour
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	wildcard := false
	for _, origin := range cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			wildcard = true
			continue
		}
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		wildcard = true
	}
	switch {
	case wildcard && cfg.AllowCredentials:
		// 携带凭证时不能返回 *，回显请求来源
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	case wildcard:
		corsCfg.AllowAllOrigins = true
	default:
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			entry.Errorw("request", "errors", c.Errors.String())
			return
		}
		entry.Infow("request")
	}
}

// MetricsMiddleware 记录请求数、耗时与并发量，路由按模板聚合
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.TrackInFlight()
		start := time.Now()
		c.Next()
		done()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// AdminAuthMiddleware 管理员鉴权：优先 Authorization Bearer，其次 admin_session Cookie
func AdminAuthMiddleware(resolver AdminTokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolver == nil {
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		tokenString, ok := extractAdminToken(c)
		if !ok {
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		claims, err := resolver.ParseJWT(tokenString)
		if err != nil {
			abortUnauthorized(c, "error.token_invalid")
			return
		}
		state, err := resolver.ResolveAdminState(c.Request.Context(), claims)
		if err != nil {
			if errors.Is(err, service.ErrAdminDisabled) {
				abortUnauthorized(c, "error.admin_disabled")
				return
			}
			if !errors.Is(err, service.ErrInvalidToken) {
				logger.Errorw("admin_auth_resolve_state_failed", "admin_id", claims.AdminID, "error", err)
			}
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		c.Set(handlershared.ContextKeyAdminID, state.AdminID)
		c.Set(handlershared.ContextKeyAdminRole, state.Role)
		c.Set("username", state.Username)
		c.Next()
	}
}

func extractAdminToken(c *gin.Context) (string, bool) {
	if token, ok := bearerToken(c); ok {
		return token, true
	}
	cookie, err := c.Cookie(constants.AdminSessionCookie)
	if err != nil || strings.TrimSpace(cookie) == "" {
		return "", false
	}
	return strings.TrimSpace(cookie), true
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AdminRBACMiddleware 管理端 RBAC 鉴权中间件（super_admin 直接放行）
func AdminRBACMiddleware(enforcer RoleEnforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(handlershared.ContextKeyAdminRole)
		if role == "" {
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		if role == constants.RoleSuperAdmin {
			c.Next()
			return
		}
		if enforcer == nil {
			logger.Errorw("admin_rbac_service_unavailable")
			abortForbidden(c)
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}
		allowed, err := enforcer.EnforceRole(role, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"role", role,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			abortForbidden(c)
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"admin_id", c.GetUint(handlershared.ContextKeyAdminID),
				"role", role,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// SuperAdminOnlyMiddleware 仅超级管理员可访问
func SuperAdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(handlershared.ContextKeyAdminRole) != constants.RoleSuperAdmin {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// UserAuthMiddleware 顾客 JWT 鉴权中间件
func UserAuthMiddleware(resolver UserTokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolver == nil {
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		userID, err := resolveUser(c, resolver, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrUserDisabled) {
				abortUnauthorized(c, "error.user_disabled")
				return
			}
			abortUnauthorized(c, "error.token_invalid")
			return
		}
		c.Set(handlershared.ContextKeyUserID, userID)
		c.Next()
	}
}

// OptionalUserAuthMiddleware 可选登录：token 有效则写入顾客 ID，否则按游客处理
func OptionalUserAuthMiddleware(resolver UserTokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolver != nil {
			if tokenString, ok := bearerToken(c); ok {
				if userID, err := resolveUser(c, resolver, tokenString); err == nil {
					c.Set(handlershared.ContextKeyUserID, userID)
				}
			}
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, resolver UserTokenResolver, tokenString string) (uint, error) {
	claims, err := resolver.ParseUserJWT(tokenString)
	if err != nil {
		return 0, err
	}
	state, err := resolver.ResolveUserState(c.Request.Context(), claims)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidToken) && !errors.Is(err, service.ErrUserDisabled) {
			logger.Errorw("user_auth_resolve_state_failed", "user_id", claims.UserID, "error", err)
		}
		return 0, err
	}
	return state.UserID, nil
}

func abortUnauthorized(c *gin.Context, key string) {
	response.Unauthorized(c, i18n.T(i18n.ResolveLocale(c), key))
	c.Abort()
}

func abortForbidden(c *gin.Context) {
	response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
	c.Abort()
}
