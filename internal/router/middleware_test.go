package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

type fakeAdminResolver struct {
	state *cache.AdminAuthState
	err   error
}

func (f *fakeAdminResolver) ParseJWT(tokenString string) (*service.JWTClaims, error) {
	if tokenString != "good-token" {
		return nil, service.ErrInvalidToken
	}
	return &service.JWTClaims{AdminID: 7, Username: "rahim"}, nil
}

func (f *fakeAdminResolver) ResolveAdminState(ctx context.Context, claims *service.JWTClaims) (*cache.AdminAuthState, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.state, nil
}

type fakeUserResolver struct {
	err error
}

func (f *fakeUserResolver) ParseUserJWT(tokenString string) (*service.UserJWTClaims, error) {
	if tokenString != "user-token" {
		return nil, service.ErrInvalidToken
	}
	return &service.UserJWTClaims{UserID: 42, Email: "karim@example.com"}, nil
}

func (f *fakeUserResolver) ResolveUserState(ctx context.Context, claims *service.UserJWTClaims) (*cache.UserAuthState, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &cache.UserAuthState{UserID: claims.UserID, Status: constants.UserStatusActive}, nil
}

type fakeEnforcer struct {
	allowed bool
	err     error
	gotObj  string
	gotAct  string
	calls   int
}

func (f *fakeEnforcer) EnforceRole(role, obj, act string) (bool, error) {
	f.calls++
	f.gotObj = obj
	f.gotAct = act
	return f.allowed, f.err
}

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestBuildCORSConfig(t *testing.T) {
	cfg := buildCORSConfig(config.CORSConfig{AllowedOrigins: []string{"*"}})
	if !cfg.AllowAllOrigins {
		t.Fatalf("wildcard without credentials should allow all origins")
	}

	cfg = buildCORSConfig(config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true})
	if cfg.AllowAllOrigins || cfg.AllowOriginFunc == nil {
		t.Fatalf("wildcard with credentials should echo origin via func")
	}

	cfg = buildCORSConfig(config.CORSConfig{AllowedOrigins: []string{" https://shop.example.com ", ""}})
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "https://shop.example.com" {
		t.Fatalf("allow-list should be trimmed, got %v", cfg.AllowOrigins)
	}
	if len(cfg.AllowMethods) == 0 || len(cfg.AllowHeaders) == 0 || cfg.MaxAge <= 0 {
		t.Fatalf("defaults should be filled: %+v", cfg)
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}, AllowCredentials: true}))
	r.POST("/api/v1/public/orders", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/public/orders", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("allow origin want shop origin got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("allow credentials want true got %q", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func newAdminAuthRouter(resolver AdminTokenResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminAuthMiddleware(resolver))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id": c.GetUint(handlershared.ContextKeyAdminID),
			"role":     c.GetString(handlershared.ContextKeyAdminRole),
		})
	})
	return r
}

func TestAdminAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAdminAuthRouter(&fakeAdminResolver{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	if code := decodeStatusCode(t, w); code != 401 {
		t.Fatalf("status_code want 401 got %d", code)
	}
}

func TestAdminAuthMiddlewareAcceptsBearerAndCookie(t *testing.T) {
	state := &cache.AdminAuthState{AdminID: 7, Username: "rahim", Role: constants.RoleOrderManager}
	r := newAdminAuthRouter(&fakeAdminResolver{state: state})

	bearer := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	bearer.Header.Set("Authorization", "Bearer good-token")
	cookie := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	cookie.AddCookie(&http.Cookie{Name: constants.AdminSessionCookie, Value: "good-token"})

	for name, req := range map[string]*http.Request{"bearer": bearer, "cookie": cookie} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status want 200 got %d", name, w.Code)
		}
		var resp struct {
			AdminID uint   `json:"admin_id"`
			Role    string `json:"role"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal response failed: %v", name, err)
		}
		if resp.AdminID != 7 || resp.Role != constants.RoleOrderManager {
			t.Fatalf("%s: unexpected context values %+v", name, resp)
		}
	}
}

func TestAdminAuthMiddlewareRejectsBadTokenAndDisabledAdmin(t *testing.T) {
	r := newAdminAuthRouter(&fakeAdminResolver{})
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("forged token status want 401 got %d", w.Code)
	}

	r = newAdminAuthRouter(&fakeAdminResolver{err: service.ErrAdminDisabled})
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("disabled admin status want 401 got %d", w.Code)
	}
}

func newRBACRouter(role string, enforcer RoleEnforcer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handlershared.ContextKeyAdminID, uint(3))
		if role != "" {
			c.Set(handlershared.ContextKeyAdminRole, role)
		}
		c.Next()
	})
	r.Use(AdminRBACMiddleware(enforcer))
	r.PATCH("/api/v1/admin/orders/:id/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminRBACMiddlewareSuperAdminBypass(t *testing.T) {
	enforcer := &fakeEnforcer{}
	r := newRBACRouter(constants.RoleSuperAdmin, enforcer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/5/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if enforcer.calls != 0 {
		t.Fatalf("super admin should not hit the enforcer")
	}
}

func TestAdminRBACMiddlewareUsesRouteTemplate(t *testing.T) {
	enforcer := &fakeEnforcer{allowed: true}
	r := newRBACRouter(constants.RoleOrderManager, enforcer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/5/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if enforcer.gotObj != "/api/v1/admin/orders/:id/status" || enforcer.gotAct != http.MethodPatch {
		t.Fatalf("unexpected enforce args obj=%s act=%s", enforcer.gotObj, enforcer.gotAct)
	}
}

func TestAdminRBACMiddlewareDenied(t *testing.T) {
	for name, enforcer := range map[string]*fakeEnforcer{
		"denied": {allowed: false},
		"error":  {err: errors.New("adapter down")},
	} {
		r := newRBACRouter(constants.RoleContentManager, enforcer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/5/status", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s: status want 403 got %d", name, w.Code)
		}
		if code := decodeStatusCode(t, w); code != 403 {
			t.Fatalf("%s: status_code want 403 got %d", name, code)
		}
	}

	r := newRBACRouter("", &fakeEnforcer{allowed: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/5/status", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing role status want 401 got %d", w.Code)
	}
}

func TestSuperAdminOnlyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for role, want := range map[string]int{
		constants.RoleSuperAdmin:     http.StatusOK,
		constants.RoleCatalogManager: http.StatusForbidden,
	} {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(handlershared.ContextKeyAdminRole, role)
			c.Next()
		})
		r.GET("/admin/admins", SuperAdminOnlyMiddleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/admins", nil))
		if w.Code != want {
			t.Fatalf("role %s: status want %d got %d", role, want, w.Code)
		}
	}
}

func TestUserAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth/me", UserAuthMiddleware(&fakeUserResolver{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(handlershared.ContextKeyUserID)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status want 401 got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"user_id":42`) {
		t.Fatalf("expected user id in body, got %s", w.Body.String())
	}

	r = gin.New()
	r.GET("/auth/me", UserAuthMiddleware(&fakeUserResolver{err: service.ErrUserDisabled}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("disabled user status want 401 got %d", w.Code)
	}
}

func TestOptionalUserAuthMiddlewareFallsBackToGuest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalUserAuthMiddleware(&fakeUserResolver{}))
	r.GET("/public/orders/track", func(c *gin.Context) {
		id := handlershared.OptionalUserID(c)
		if id == nil {
			c.JSON(http.StatusOK, gin.H{"guest": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": *id})
	})

	req := httptest.NewRequest(http.MethodGet, "/public/orders/track", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"guest":true`) {
		t.Fatalf("invalid token should continue as guest, got %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/public/orders/track", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `"user_id":42`) {
		t.Fatalf("valid token should set user id, got %s", w.Body.String())
	}
}

func TestMetricsMiddlewarePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/v1/public/products/:slug", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/public/products/panjabi", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status want 204 got %d", w.Code)
	}
}
