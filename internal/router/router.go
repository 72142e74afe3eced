package router

import (
	"net/http"
	"strings"

	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/config"
	adminhandlers "github.com/bazaar-next/internal/http/handlers/admin"
	publichandlers "github.com/bazaar-next/internal/http/handlers/public"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/http/validation"
	"github.com/bazaar-next/internal/i18n"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/metrics"
	"github.com/bazaar-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	validation.Register()
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	limits := buildRateLimits(cfg.RateLimit)
	redisClient := cache.Client()
	orderLimit := RateLimitMiddleware(redisClient, limits.order, KeyByIP)
	couponLimit := RateLimitMiddleware(redisClient, limits.coupon, KeyByIP)
	feedbackLimit := RateLimitMiddleware(redisClient, limits.feedback, KeyByIP)
	userLoginLimit := RateLimitMiddleware(redisClient, limits.userLogin, KeyByIPAndJSONField("email"))
	adminLoginLimit := RateLimitMiddleware(redisClient, limits.adminLogin, KeyByIPAndJSONField("username"))

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(MetricsMiddleware())
		r.GET(metricsPath(cfg.Metrics), gin.WrapH(metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 本地存储的上传文件
	if strings.TrimSpace(cfg.Upload.Driver) != "s3" {
		r.Static("/uploads", uploadDir(cfg.Upload))
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, i18n.T(i18n.ResolveLocale(c), "error.not_found"))
	})

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		public.Use(OptionalUserAuthMiddleware(c.UserAuthService))
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/home", publicHandler.GetHome)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/categories/:slug", publicHandler.GetCategoryBySlug)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProductBySlug)
			public.GET("/products/:slug/reviews", publicHandler.GetProductReviews)
			public.POST("/products/:slug/reviews", feedbackLimit, publicHandler.SubmitProductReview)
			public.GET("/products/:slug/questions", publicHandler.GetProductQuestions)
			public.POST("/products/:slug/questions", feedbackLimit, publicHandler.SubmitProductQuestion)
			public.GET("/shipping-methods", publicHandler.GetShippingMethods)
			public.POST("/coupons/validate", couponLimit, publicHandler.ValidateCoupon)
			public.POST("/checkout/quote", publicHandler.QuoteCheckout)
			public.POST("/orders", orderLimit, publicHandler.PlaceOrder)
			public.GET("/orders/track", publicHandler.TrackOrder)
			public.GET("/captcha", publicHandler.GetImageCaptcha)

			public.POST("/auth/register", userLoginLimit, publicHandler.UserRegister)
			public.POST("/auth/login", userLoginLimit, publicHandler.UserLogin)
		}

		// 顾客接口（需鉴权）
		auth := apiV1.Group("/auth")
		auth.Use(UserAuthMiddleware(c.UserAuthService))
		{
			auth.GET("/me", publicHandler.GetCurrentUser)
			auth.GET("/orders", publicHandler.GetMyOrders)
			auth.GET("/orders/:order_number", publicHandler.GetMyOrder)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", adminLoginLimit, adminHandler.AdminLogin)

			session := admin.Group("")
			session.Use(AdminAuthMiddleware(c.AuthService))
			{
				session.POST("/logout", adminHandler.AdminLogout)
				session.GET("/me", adminHandler.GetAdminMe)
				session.PUT("/password", adminHandler.UpdateAdminPassword)
			}

			authorized := admin.Group("")
			authorized.Use(AdminAuthMiddleware(c.AuthService), AdminRBACMiddleware(c.AuthzService))
			registerAdminRoutes(authorized, adminHandler)
		}
	}

	return r
}

func registerAdminRoutes(g *gin.RouterGroup, h *adminhandlers.Handler) {
	// 管理员账号（仅超级管理员）
	admins := g.Group("/admins", SuperAdminOnlyMiddleware())
	{
		admins.GET("", h.ListAdmins)
		admins.POST("", h.CreateAdmin)
		admins.DELETE("/:id", h.DeleteAdmin)
	}

	// 分类
	g.GET("/categories", h.GetAdminCategories)
	g.GET("/categories/:id", h.GetAdminCategory)
	g.POST("/categories", h.CreateCategory)
	g.PUT("/categories/:id", h.UpdateCategory)
	g.DELETE("/categories/:id", h.DeleteCategory)

	g.GET("/subcategories", h.GetAdminSubCategories)
	g.GET("/subcategories/:id", h.GetAdminSubCategory)
	g.POST("/subcategories", h.CreateSubCategory)
	g.PUT("/subcategories/:id", h.UpdateSubCategory)
	g.DELETE("/subcategories/:id", h.DeleteSubCategory)

	// 商品与规格
	g.GET("/products", h.GetAdminProducts)
	g.GET("/products/:id", h.GetAdminProduct)
	g.POST("/products", h.CreateProduct)
	g.PUT("/products/:id", h.UpdateProduct)
	g.DELETE("/products/:id", h.DeleteProduct)
	g.POST("/products/:id/variants", h.CreateProductVariant)
	g.PUT("/products/:id/variants/:variant_id", h.UpdateProductVariant)
	g.DELETE("/products/:id/variants/:variant_id", h.DeleteProductVariant)

	// 优惠券
	g.GET("/coupons", h.GetAdminCoupons)
	g.GET("/coupons/:id", h.GetAdminCoupon)
	g.GET("/coupons/:id/usages", h.GetAdminCouponUsages)
	g.POST("/coupons", h.CreateCoupon)
	g.PUT("/coupons/:id", h.UpdateCoupon)
	g.DELETE("/coupons/:id", h.DeleteCoupon)

	// 配送方式
	g.GET("/shipping-methods", h.GetAdminShippingMethods)
	g.GET("/shipping-methods/:id", h.GetAdminShippingMethod)
	g.POST("/shipping-methods", h.CreateShippingMethod)
	g.PUT("/shipping-methods/:id", h.UpdateShippingMethod)
	g.DELETE("/shipping-methods/:id", h.DeleteShippingMethod)

	// 首页内容
	g.GET("/banners", h.GetAdminBanners)
	g.GET("/banners/:id", h.GetAdminBanner)
	g.POST("/banners", h.CreateBanner)
	g.PUT("/banners/:id", h.UpdateBanner)
	g.DELETE("/banners/:id", h.DeleteBanner)

	registerContentRoutes(g, "/mid-banners", h.MidBannerRoutes())
	registerContentRoutes(g, "/feature-cards", h.FeatureCardRoutes())
	registerContentRoutes(g, "/social-links", h.SocialLinkRoutes())
	registerContentRoutes(g, "/product-sections", h.ProductSectionRoutes())
	g.GET("/menu-items/tree", h.GetMenuTree)
	registerContentRoutes(g, "/menu-items", h.MenuItemRoutes())

	g.GET("/footer-sections", h.GetAdminFooterSections)
	g.GET("/footer-sections/:id", h.GetAdminFooterSection)
	g.POST("/footer-sections", h.CreateFooterSection)
	g.PUT("/footer-sections/:id", h.UpdateFooterSection)
	g.DELETE("/footer-sections/:id", h.DeleteFooterSection)

	g.GET("/footer-links", h.GetAdminFooterLinks)
	g.GET("/footer-links/:id", h.GetAdminFooterLink)
	g.POST("/footer-links", h.CreateFooterLink)
	g.PUT("/footer-links/:id", h.UpdateFooterLink)
	g.DELETE("/footer-links/:id", h.DeleteFooterLink)

	// 站点设置
	g.GET("/settings/:key", h.GetSetting)
	g.PUT("/settings/:key", h.UpdateSetting)

	// 订单
	g.GET("/orders", h.GetAdminOrders)
	g.GET("/orders/:id", h.GetAdminOrder)
	g.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	g.PATCH("/orders/:id/payment-status", h.UpdateOrderPaymentStatus)
	g.DELETE("/orders/:id", h.DeleteOrder)

	// 评价与问答
	g.GET("/reviews", h.GetAdminReviews)
	g.PATCH("/reviews/:id/approval", h.SetReviewApproval)
	g.DELETE("/reviews/:id", h.DeleteReview)

	g.GET("/questions", h.GetAdminQuestions)
	g.POST("/questions/:id/answer", h.AnswerQuestion)
	g.PATCH("/questions/:id/publish", h.SetQuestionPublished)
	g.DELETE("/questions/:id", h.DeleteQuestion)

	// 顾客
	g.GET("/customers", h.GetAdminCustomers)

	// 上传
	g.POST("/upload", h.UploadFile)
}

func registerContentRoutes(g *gin.RouterGroup, path string, routes adminhandlers.ContentRoutes) {
	g.GET(path, routes.List)
	g.GET(path+"/:id", routes.Get)
	g.POST(path, routes.Create)
	g.PUT(path+"/:id", routes.Update)
	g.DELETE(path+"/:id", routes.Delete)
}

type rateLimits struct {
	order      RateLimitRule
	coupon     RateLimitRule
	feedback   RateLimitRule
	userLogin  RateLimitRule
	adminLogin RateLimitRule
}

func buildRateLimits(cfg config.RateLimitConfig) rateLimits {
	if !cfg.Enabled {
		return rateLimits{}
	}
	build := func(name string, rule config.RateLimitRule) RateLimitRule {
		return RateLimitRule{
			Prefix:        cache.BuildKey("rate:" + name),
			WindowSeconds: rule.WindowSeconds,
			MaxRequests:   rule.MaxRequests,
		}
	}
	return rateLimits{
		order:      build("order", cfg.Order),
		coupon:     build("coupon", cfg.Coupon),
		feedback:   build("feedback", cfg.Feedback),
		userLogin:  build("user_login", cfg.Login),
		adminLogin: build("admin_login", cfg.Login),
	}
}

func metricsPath(cfg config.MetricsConfig) string {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return "/metrics"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func uploadDir(cfg config.UploadConfig) string {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return "./uploads"
	}
	return dir
}
