package provider

import (
	"context"

	"github.com/bazaar-next/internal/authz"
	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/queue"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"
	"github.com/bazaar-next/internal/storage"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client
	Storage     storage.Storage

	// Repositories
	AdminRepo          repository.AdminRepository
	UserRepo           repository.UserRepository
	CategoryRepo       repository.CategoryRepository
	SubCategoryRepo    repository.SubCategoryRepository
	ProductRepo        repository.ProductRepository
	ProductVariantRepo repository.ProductVariantRepository
	ReviewRepo         repository.ReviewRepository
	QuestionRepo       repository.QuestionRepository
	OrderRepo          repository.OrderRepository
	CouponRepo         repository.CouponRepository
	CouponUsageRepo    repository.CouponUsageRepository
	ShippingMethodRepo repository.ShippingMethodRepository
	SettingRepo        repository.SettingRepository
	BannerRepo         repository.BannerRepository
	MidBannerRepo      repository.ContentRepository[models.MidBanner]
	FeatureCardRepo    repository.ContentRepository[models.FeatureCard]
	SocialLinkRepo     repository.ContentRepository[models.SocialLink]
	MenuItemRepo       repository.MenuItemRepository
	ProductSectionRepo repository.ProductSectionRepository
	FooterRepo         repository.FooterRepository

	// Services
	AuthzService          *authz.Service
	AuthService           *service.AuthService
	UserAuthService       *service.UserAuthService
	AdminService          *service.AdminService
	EmailService          *service.EmailService
	CaptchaService        *service.CaptchaService
	UploadService         *service.UploadService
	SettingService        *service.SettingService
	CategoryService       *service.CategoryService
	ProductService        *service.ProductService
	ReviewService         *service.ReviewService
	CouponService         *service.CouponService
	ShippingService       *service.ShippingService
	CheckoutService       *service.CheckoutService
	OrderService          *service.OrderService
	BannerService         *service.BannerService
	MidBannerService      *service.MidBannerService
	FeatureCardService    *service.FeatureCardService
	SocialLinkService     *service.SocialLinkService
	MenuItemService       *service.MenuItemService
	ProductSectionService *service.ProductSectionService
	FooterService         *service.FooterService
	StorefrontService     *service.StorefrontService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err, "fallback", "cache_disabled")
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		DB:          models.DB,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SubCategoryRepo = repository.NewSubCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductVariantRepo = repository.NewProductVariantRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.QuestionRepo = repository.NewQuestionRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponUsageRepo = repository.NewCouponUsageRepository(db)
	c.ShippingMethodRepo = repository.NewShippingMethodRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.MidBannerRepo = repository.NewMidBannerRepository(db)
	c.FeatureCardRepo = repository.NewFeatureCardRepository(db)
	c.SocialLinkRepo = repository.NewSocialLinkRepository(db)
	c.MenuItemRepo = repository.NewMenuItemRepository(db)
	c.ProductSectionRepo = repository.NewProductSectionRepository(db)
	c.FooterRepo = repository.NewFooterRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	store, err := storage.New(context.Background(), c.Config.Upload)
	if err != nil {
		logger.Errorw("provider_init_storage_failed", "driver", c.Config.Upload.Driver, "error", err)
		panic(err)
	}
	c.Storage = store

	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email, c.Config.App.SiteURL)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config.Upload, c.Storage)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.AdminService = service.NewAdminService(c.AdminRepo)

	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.SubCategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ProductVariantRepo, c.CategoryRepo, c.SubCategoryRepo, c.ReviewRepo, c.QuestionRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.QuestionRepo, c.ProductRepo)

	c.CouponService = service.NewCouponService(c.CouponRepo, c.CouponUsageRepo)
	c.ShippingService = service.NewShippingService(c.ShippingMethodRepo)
	c.CheckoutService = service.NewCheckoutService(c.ProductRepo, c.CouponService, c.ShippingService)
	c.OrderService = service.NewOrderService(c.DB, c.OrderRepo, c.CouponRepo, c.CouponUsageRepo, c.CheckoutService, c.QueueClient)

	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.MidBannerService = service.NewMidBannerService(c.MidBannerRepo)
	c.FeatureCardService = service.NewFeatureCardService(c.FeatureCardRepo)
	c.SocialLinkService = service.NewSocialLinkService(c.SocialLinkRepo)
	c.MenuItemService = service.NewMenuItemService(c.MenuItemRepo)
	c.ProductSectionService = service.NewProductSectionService(c.ProductSectionRepo, c.CategoryRepo)
	c.FooterService = service.NewFooterService(c.FooterRepo)
	c.StorefrontService = service.NewStorefrontService(service.StorefrontDeps{
		SettingService: c.SettingService,
		BannerService:  c.BannerService,
		CategoryRepo:   c.CategoryRepo,
		ProductRepo:    c.ProductRepo,
		MidBannerRepo:  c.MidBannerRepo,
		FeatureRepo:    c.FeatureCardRepo,
		SocialRepo:     c.SocialLinkRepo,
		MenuRepo:       c.MenuItemRepo,
		SectionRepo:    c.ProductSectionRepo,
		FooterRepo:     c.FooterRepo,
	})
}
