package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/config"

	"github.com/gin-gonic/gin"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"email":" Test@Example.com "}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "1.2.3.4:5678"

	key := KeyByIPAndJSONField("email")(c)
	if key != "test@example.com|1.2.3.4" {
		t.Fatalf("key want test@example.com|1.2.3.4 got %s", key)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("read body after key extraction failed: %v", err)
	}
	if !strings.Contains(string(body), "Test@Example.com") {
		t.Fatalf("request body should be restored after reading field")
	}
}

func TestRateLimitMiddlewareDisabledRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status want 200 got %d", i, w.Code)
		}
	}
}

func TestRateLimitMiddlewareLocalFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{Prefix: "test:rate:order", WindowSeconds: 60, MaxRequests: 2}, KeyByIP))
	r.POST("/api/v1/public/orders", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/public/orders", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := send("10.0.0.1:1000"); w.Code != http.StatusCreated {
			t.Fatalf("request %d: status want 201 got %d", i, w.Code)
		}
	}
	w := send("10.0.0.1:1000")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status want 429 got %d", w.Code)
	}
	if code := decodeStatusCode(t, w); code != 429 {
		t.Fatalf("status_code want 429 got %d", code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	if w := send("10.0.0.2:1000"); w.Code != http.StatusCreated {
		t.Fatalf("other client should not be limited, got %d", w.Code)
	}
}

func TestBuildRateLimits(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled: true,
		Order:   config.RateLimitRule{WindowSeconds: 60, MaxRequests: 5},
		Login:   config.RateLimitRule{WindowSeconds: 300, MaxRequests: 10},
	}
	limits := buildRateLimits(cfg)
	if limits.order.MaxRequests != 5 || limits.order.WindowSeconds != 60 {
		t.Fatalf("unexpected order rule: %+v", limits.order)
	}
	if limits.userLogin.Prefix == limits.adminLogin.Prefix {
		t.Fatalf("user and admin login should use separate buckets")
	}
	if !strings.HasSuffix(limits.order.Prefix, "rate:order") {
		t.Fatalf("unexpected order prefix: %s", limits.order.Prefix)
	}

	cfg.Enabled = false
	if limits := buildRateLimits(cfg); limits.order.MaxRequests != 0 {
		t.Fatalf("disabled config should produce empty rules")
	}
}

func TestMetricsPath(t *testing.T) {
	cases := map[string]string{"": "/metrics", "prom": "/prom", "/internal/metrics": "/internal/metrics"}
	for input, want := range cases {
		if got := metricsPath(config.MetricsConfig{Path: input}); got != want {
			t.Fatalf("metricsPath(%q) want %s got %s", input, want, got)
		}
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "uint8", input: uint8(12), want: 12, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
