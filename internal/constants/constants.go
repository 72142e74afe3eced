package constants

// 订单状态常量（后台自由设置，不校验流转）
const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderStatuses 全部订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 支付状态常量
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// PaymentStatuses 全部支付状态
var PaymentStatuses = []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed}

// 支付方式常量（仅记录，不发起扣款）
const (
	PaymentMethodCOD   = "COD"
	PaymentMethodBkash = "BKASH"
	PaymentMethodNagad = "NAGAD"
	PaymentMethodCard  = "CARD"
)

// PaymentMethods 全部支付方式
var PaymentMethods = []string{PaymentMethodCOD, PaymentMethodBkash, PaymentMethodNagad, PaymentMethodCard}

// 优惠券类型常量
const (
	CouponTypePercentage = "PERCENTAGE"
	CouponTypeFixed      = "FIXED"
)

// 首页商品区块类型常量
const (
	SectionTypeFeatured     = "FEATURED"
	SectionTypeNewArrival   = "NEW_ARRIVAL"
	SectionTypeBestSeller   = "BEST_SELLER"
	SectionTypeCategory     = "CATEGORY"
	SectionTypeCustom       = "CUSTOM"
	SectionItemLimitDefault = 8
	SectionItemLimitMax     = 48
)

// SectionTypes 全部区块类型
var SectionTypes = []string{
	SectionTypeFeatured,
	SectionTypeNewArrival,
	SectionTypeBestSeller,
	SectionTypeCategory,
	SectionTypeCustom,
}

// 商品排序常量
const (
	ProductSortNewest    = "newest"
	ProductSortPriceAsc  = "price_asc"
	ProductSortPriceDesc = "price_desc"
	ProductSortName      = "name"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 管理员角色常量
const (
	RoleSuperAdmin     = "super_admin"
	RoleCatalogManager = "catalog_manager"
	RoleContentManager = "content_manager"
	RoleOrderManager   = "order_manager"
)

// AdminRoles 全部内置管理员角色
var AdminRoles = []string{RoleSuperAdmin, RoleCatalogManager, RoleContentManager, RoleOrderManager}

// 验证码校验场景常量
const (
	CaptchaSceneAdminLogin     = "admin_login"
	CaptchaSceneCreateOrder    = "create_order"
	CaptchaSceneSubmitReview   = "submit_review"
	CaptchaSceneSubmitQuestion = "submit_question"
)

// 上传场景常量
const (
	UploadSceneBanner   = "banner"
	UploadSceneProduct  = "product"
	UploadSceneCategory = "category"
	UploadSceneCMS      = "cms"
	UploadSceneSettings = "settings"
)

// 上传存储驱动常量
const (
	UploadDriverLocal = "local"
	UploadDriverS3    = "s3"
)

// 队列常量
const (
	QueueCritical        = "critical"
	QueueDefault         = "default"
	QueueLow             = "low"
	TaskOrderPlacedEmail = "order:placed"
	TaskOrderStatusEmail = "order:status_changed"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault   = "bz"
	CacheKeySiteConfig   = "public:site_config"
	CacheKeyHomePage     = "public:home"
	CacheKeyCategoryTree = "public:categories"
)

// 设置键常量
const (
	SettingKeyBasic   = "basic"
	SettingKeyFooter  = "footer"
	SettingKeyContact = "contact"
)

// 币种常量
const (
	SiteCurrencyDefault       = "BDT"
	SiteCurrencySymbolDefault = "৳"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleBnBD = "bn-BD"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleBnBD}

// 订单号常量
const (
	OrderNumberPrefix      = "BD"
	OrderNumberMaxAttempts = 5
)

// 评分范围常量
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 后台会话 Cookie
const (
	AdminSessionCookie = "admin_session"
	AdminSessionPath   = "/"
)
