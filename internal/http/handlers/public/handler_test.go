package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/http/validation"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storefrontEnv 基于内存 sqlite 的完整依赖容器与前台路由
type storefrontEnv struct {
	db       *gorm.DB
	engine   *gin.Engine
	product  *models.Product
	shipping *models.ShippingMethod
}

func newStorefrontEnv(t *testing.T) *storefrontEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:public_%s?mode=memory&cache=shared", name)), &gorm.Config{})
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

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{SecretKey: "admin-test-secret", ExpireHours: 1}
	cfg.UserJWT = config.JWTConfig{SecretKey: "user-test-secret", ExpireHours: 1}
	cfg.Upload.Dir = t.TempDir()
	h := New(provider.NewContainer(cfg))

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("request_id", "req-test")
		c.Next()
	})
	public := engine.Group("/api/v1/public")
	public.POST("/coupons/validate", h.ValidateCoupon)
	public.POST("/checkout/quote", h.QuoteCheckout)
	public.POST("/orders", h.PlaceOrder)
	public.GET("/orders/track", h.TrackOrder)

	category := &models.Category{Name: "Fashion", Slug: "fashion", IsActive: true}
	require.NoError(t, db.Create(category).Error)
	product := &models.Product{CategoryID: category.ID, Name: "Panjabi", Slug: "panjabi", Price: models.MustMoney("750"), IsActive: true}
	require.NoError(t, db.Create(product).Error)
	shipping := &models.ShippingMethod{Name: "Inside Dhaka", Cost: models.MustMoney("60"), IsActive: true}
	require.NoError(t, db.Create(shipping).Error)
	require.NoError(t, db.Create(&models.Coupon{
		Code:        "WELCOME10",
		Type:        constants.CouponTypePercentage,
		Value:       models.MustMoney("10"),
		MaxDiscount: models.MoneyPtr(models.MustMoney("500").Decimal),
		MinPurchase: models.MustMoney("1000"),
		ValidFrom:   time.Now().Add(-24 * time.Hour),
		ValidTo:     time.Now().Add(24 * time.Hour),
		Active:      true,
	}).Error)

	return &storefrontEnv{db: db, engine: engine, product: product, shipping: shipping}
}

func (e *storefrontEnv) do(t *testing.T, method, target string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
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

func (e *storefrontEnv) orderPayload(quantity int, couponCode string) gin.H {
	return gin.H{
		"customer_name":      "Rahim Uddin",
		"customer_email":     "rahim@example.com",
		"customer_phone":     "01712345678",
		"shipping_address":   "House 12, Road 5, Dhanmondi",
		"city":               "Dhaka",
		"items":              []gin.H{{"product_id": e.product.ID, "quantity": quantity}},
		"coupon_code":        couponCode,
		"shipping_method_id": e.shipping.ID,
	}
}

func TestValidateCouponRejectionIsVerbatim(t *testing.T) {
	env := newStorefrontEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/v1/public/coupons/validate", gin.H{"code": "welcome10", "subtotal": "750"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(400), body["status_code"])
	assert.Equal(t, "minimum purchase not met (requires ৳1000.00)", body["error"])
	assert.Equal(t, "req-test", body["request_id"])

	w, body = env.do(t, http.MethodPost, "/api/v1/public/coupons/validate", gin.H{"code": "WELCOME10", "subtotal": "1500"})
	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "150.00", data["discount"])
}

func TestQuoteWithBadCouponStillSucceeds(t *testing.T) {
	env := newStorefrontEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/v1/public/checkout/quote", gin.H{
		"items":              []gin.H{{"product_id": env.product.ID, "quantity": 1}},
		"coupon_code":        "WELCOME10",
		"shipping_method_id": env.shipping.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "minimum purchase not met (requires ৳1000.00)", data["coupon_error"])
	assert.Equal(t, "0.00", data["discount"])
	assert.Equal(t, "810.00", data["total"])
}

func TestPlaceOrderStatuses(t *testing.T) {
	env := newStorefrontEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/v1/public/orders", env.orderPayload(1, "WELCOME10"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "minimum purchase not met (requires ৳1000.00)", body["error"])

	w, body = env.do(t, http.MethodPost, "/api/v1/public/orders", env.orderPayload(10000, ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body, "error")

	w, body = env.do(t, http.MethodPost, "/api/v1/public/orders", env.orderPayload(2, "WELCOME10"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := body["data"].(map[string]interface{})
	assert.Regexp(t, `^BD\d{12}$`, data["order_number"])
	assert.Equal(t, constants.PaymentMethodCOD, data["payment_method"])
	assert.Equal(t, "1410.00", data["total"])

	target := fmt.Sprintf("/api/v1/public/orders/track?order_number=%s&email=RAHIM@example.com", data["order_number"])
	w, _ = env.do(t, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = env.do(t, http.MethodGet, "/api/v1/public/orders/track?order_number=BD000000000000&email=rahim@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(404), body["status_code"])
	assert.Equal(t, "req-test", body["request_id"])
}
