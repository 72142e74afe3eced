package service

import (
	"errors"

	"github.com/bazaar-next/internal/pricing"
)

// 通用错误
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrSaveFailed   = errors.New("save failed")
)

// 认证与账号
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrAdminDisabled      = errors.New("admin disabled")
	ErrUserDisabled       = errors.New("user disabled")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrCannotDeleteSelf   = errors.New("cannot delete self")
	ErrLastSuperAdmin     = errors.New("last super admin")
	ErrInvalidToken       = errors.New("invalid token")
)

// 目录与内容
var (
	ErrSlugExists          = errors.New("slug already exists")
	ErrCodeExists          = errors.New("code already exists")
	ErrSKUExists           = errors.New("sku already exists")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("subcategory not found")
	ErrSubCategoryMismatch = errors.New("subcategory does not belong to category")
	ErrCategoryInUse       = errors.New("category in use")
	ErrSubCategoryInUse    = errors.New("subcategory in use")
	ErrProductNotFound     = errors.New("product not found")
	ErrVariantNotFound     = errors.New("variant not found")
	ErrMenuItemHasChildren = errors.New("menu item has children")
	ErrMenuParentInvalid   = errors.New("invalid menu parent")
	ErrSectionTypeInvalid  = errors.New("invalid section type")
	ErrInvalidRating       = errors.New("invalid rating")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

// 结算与订单
var (
	ErrInvalidOrderItem        = errors.New("invalid order item")
	ErrProductNotAvailable     = errors.New("product not available")
	ErrVariantNotAvailable     = errors.New("variant not available")
	ErrShippingMethodRequired  = errors.New("shipping method required")
	ErrShippingNotAvailable    = errors.New("shipping method not available")
	ErrShippingMethodNotFound  = errors.New("shipping method not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderNumberExhausted    = errors.New("order number generation exhausted")
	ErrOrderCreateFailed       = errors.New("order create failed")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrCouponTypeInvalid       = errors.New("invalid coupon type")
	ErrCouponNotFound          = pricing.ErrCouponNotFound
	ErrCouponInactive          = pricing.ErrCouponInactive
	ErrCouponNotYetValid       = pricing.ErrCouponNotYetValid
	ErrCouponExpired           = pricing.ErrCouponExpired
	ErrCouponUsageExceeded     = pricing.ErrCouponUsageExceeded
	ErrCouponMinPurchaseNotMet = pricing.ErrMinPurchaseNotMet
)

// 验证码、邮件、上传
var (
	ErrCaptchaRequired           = errors.New("captcha required")
	ErrCaptchaInvalid            = errors.New("captcha invalid")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
	ErrUploadEmpty               = errors.New("upload file empty")
	ErrUploadTooLarge            = errors.New("upload file too large")
	ErrUploadTypeNotAllowed      = errors.New("upload file type not allowed")
	ErrUploadDimensionExceeded   = errors.New("upload image dimension exceeded")
	ErrUploadSceneInvalid        = errors.New("upload scene invalid")
)

// IsCouponRejection 判断是否为优惠券规则拒绝
func IsCouponRejection(err error) bool {
	return errors.Is(err, ErrCouponNotFound) ||
		errors.Is(err, ErrCouponInactive) ||
		errors.Is(err, ErrCouponNotYetValid) ||
		errors.Is(err, ErrCouponExpired) ||
		errors.Is(err, ErrCouponUsageExceeded) ||
		errors.Is(err, ErrCouponMinPurchaseNotMet)
}
