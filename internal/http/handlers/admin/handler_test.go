package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type backOfficeEnv struct {
	db     *gorm.DB
	engine *gin.Engine
}

func newBackOfficeEnv(t *testing.T) *backOfficeEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })
	require.NoError(t, models.InitDefaultAdmin("root", "Dhaka2025"))

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{SecretKey: "admin-test-secret", ExpireHours: 1}
	cfg.UserJWT = config.JWTConfig{SecretKey: "user-test-secret", ExpireHours: 1}
	cfg.Upload.Dir = t.TempDir()
	h := New(provider.NewContainer(cfg))

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("request_id", "req-admin")
		c.Next()
	})
	admin := engine.Group("/api/v1/admin")
	admin.POST("/login", h.AdminLogin)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	return &backOfficeEnv{db: db, engine: engine}
}

func (e *backOfficeEnv) do(t *testing.T, method, target string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	return w, decoded
}

func TestAdminLoginSetsSessionCookie(t *testing.T) {
	env := newBackOfficeEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/v1/admin/login", gin.H{"username": "root", "password": "wrong-pass1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid username or password", body["error"])
	assert.Equal(t, "req-admin", body["request_id"])
	assert.Empty(t, w.Result().Cookies())

	w, body = env.do(t, http.MethodPost, "/api/v1/admin/login", gin.H{"username": "root", "password": "Dhaka2025"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := body["data"].(map[string]interface{})["token"]
	require.NotEmpty(t, token)

	var session *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.AdminSessionCookie {
			session = cookie
		}
	}
	require.NotNil(t, session)
	assert.Equal(t, token, session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
	assert.False(t, session.Secure)
}

func TestDeleteCategoryInUseConflicts(t *testing.T) {
	env := newBackOfficeEnv(t)
	used := &models.Category{Name: "Fashion", Slug: "fashion", IsActive: true}
	require.NoError(t, env.db.Create(used).Error)
	require.NoError(t, env.db.Create(&models.Product{CategoryID: used.ID, Name: "Panjabi", Slug: "panjabi", Price: models.MustMoney("750"), IsActive: true}).Error)
	empty := &models.Category{Name: "Home", Slug: "home", IsActive: true}
	require.NoError(t, env.db.Create(empty).Error)

	w, body := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/categories/%d", used.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, float64(409), body["status_code"])
	assert.Equal(t, "category in use", body["error"])

	w, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/categories/%d", empty.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newBackOfficeEnv(t)
	order := &models.Order{
		OrderNumber:     "BD250114482913",
		CustomerName:    "Rahim Uddin",
		CustomerEmail:   "rahim@example.com",
		CustomerPhone:   "01712345678",
		ShippingAddress: "House 12, Road 5, Dhanmondi",
		Status:          constants.OrderStatusPending,
		PaymentStatus:   constants.PaymentStatusPending,
		PaymentMethod:   constants.PaymentMethodCOD,
		Currency:        constants.SiteCurrencyDefault,
	}
	require.NoError(t, env.db.Create(order).Error)
	target := fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID)

	w, _ := env.do(t, http.MethodPatch, target, gin.H{"status": "LOST"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := env.do(t, http.MethodPatch, target, gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, constants.OrderStatusShipped, body["data"].(map[string]interface{})["status"])

	w, _ = env.do(t, http.MethodPatch, "/api/v1/admin/orders/999/status", gin.H{"status": "SHIPPED"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
