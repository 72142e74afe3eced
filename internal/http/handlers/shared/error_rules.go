package shared

import (
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/service"
)

// CommonErrorRules 通用错误映射
var CommonErrorRules = []MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrInvalidDateRange, Code: response.CodeBadRequest, Key: "error.invalid_date_range"},
	{Target: service.ErrSaveFailed, Code: response.CodeInternal, Key: "error.save_failed"},
}

// CatalogErrorRules 分类、商品与内容管理错误映射
var CatalogErrorRules = []MappedError{
	{Target: service.ErrSlugExists, Code: response.CodeConflict, Key: "error.slug_exists"},
	{Target: service.ErrSKUExists, Code: response.CodeConflict, Key: "error.sku_exists"},
	{Target: service.ErrCategoryInUse, Code: response.CodeConflict, Key: "error.category_in_use"},
	{Target: service.ErrSubCategoryInUse, Code: response.CodeConflict, Key: "error.subcategory_in_use"},
	{Target: service.ErrMenuItemHasChildren, Code: response.CodeConflict, Key: "error.menu_has_children"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
	{Target: service.ErrSubCategoryNotFound, Code: response.CodeNotFound, Key: "error.subcategory_not_found"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrVariantNotFound, Code: response.CodeNotFound, Key: "error.variant_not_found"},
	{Target: service.ErrSubCategoryMismatch, Code: response.CodeBadRequest, Key: "error.subcategory_mismatch"},
	{Target: service.ErrMenuParentInvalid, Code: response.CodeBadRequest, Key: "error.menu_parent_invalid"},
	{Target: service.ErrSectionTypeInvalid, Code: response.CodeBadRequest, Key: "error.section_type_invalid"},
	{Target: service.ErrInvalidRating, Code: response.CodeBadRequest, Key: "error.invalid_rating"},
}

// CheckoutErrorRules 结算与下单错误映射（优惠券拒绝原因单独原样返回）
var CheckoutErrorRules = []MappedError{
	{Target: service.ErrInvalidOrderItem, Code: response.CodeBadRequest, Key: "error.invalid_order_item"},
	{Target: service.ErrProductNotAvailable, Code: response.CodeBadRequest, Key: "error.product_not_available"},
	{Target: service.ErrVariantNotAvailable, Code: response.CodeBadRequest, Key: "error.variant_not_available"},
	{Target: service.ErrShippingMethodRequired, Code: response.CodeBadRequest, Key: "error.shipping_method_required"},
	{Target: service.ErrShippingNotAvailable, Code: response.CodeBadRequest, Key: "error.shipping_not_available"},
	{Target: service.ErrShippingMethodNotFound, Code: response.CodeBadRequest, Key: "error.shipping_method_not_found"},
	{Target: service.ErrInvalidPaymentMethod, Code: response.CodeBadRequest, Key: "error.invalid_payment_method"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrOrderNumberExhausted, Code: response.CodeInternal, Key: "error.order_create_failed"},
	{Target: service.ErrOrderCreateFailed, Code: response.CodeInternal, Key: "error.order_create_failed"},
}

// OrderAdminErrorRules 后台订单处理错误映射
var OrderAdminErrorRules = []MappedError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrInvalidStatus, Code: response.CodeBadRequest, Key: "error.invalid_status"},
	{Target: service.ErrInvalidPaymentStatus, Code: response.CodeBadRequest, Key: "error.invalid_payment_status"},
}

// CouponAdminErrorRules 优惠券与配送方式管理错误映射
var CouponAdminErrorRules = []MappedError{
	{Target: service.ErrCodeExists, Code: response.CodeConflict, Key: "error.code_exists"},
	{Target: service.ErrCouponTypeInvalid, Code: response.CodeBadRequest, Key: "error.coupon_type_invalid"},
	{Target: service.ErrShippingMethodNotFound, Code: response.CodeNotFound, Key: "error.shipping_method_not_found"},
}

// AuthErrorRules 认证与账号错误映射
var AuthErrorRules = []MappedError{
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrInvalidPassword, Code: response.CodeBadRequest, Key: "error.invalid_password"},
	{Target: service.ErrAdminDisabled, Code: response.CodeUnauthorized, Key: "error.admin_disabled"},
	{Target: service.ErrUserDisabled, Code: response.CodeUnauthorized, Key: "error.user_disabled"},
	{Target: service.ErrInvalidToken, Code: response.CodeUnauthorized, Key: "error.token_invalid"},
	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
	{Target: service.ErrUsernameExists, Code: response.CodeConflict, Key: "error.username_exists"},
	{Target: service.ErrInvalidRole, Code: response.CodeBadRequest, Key: "error.invalid_role"},
	{Target: service.ErrCannotDeleteSelf, Code: response.CodeBadRequest, Key: "error.cannot_delete_self"},
	{Target: service.ErrLastSuperAdmin, Code: response.CodeConflict, Key: "error.last_super_admin"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.bad_request"},
}

// CaptchaErrorRules 验证码错误映射
var CaptchaErrorRules = []MappedError{
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
}

// UploadErrorRules 上传错误映射
var UploadErrorRules = []MappedError{
	{Target: service.ErrUploadEmpty, Code: response.CodeBadRequest, Key: "error.upload_empty"},
	{Target: service.ErrUploadTooLarge, Code: response.CodeBadRequest, Key: "error.upload_too_large"},
	{Target: service.ErrUploadTypeNotAllowed, Code: response.CodeBadRequest, Key: "error.upload_type_not_allowed"},
	{Target: service.ErrUploadDimensionExceeded, Code: response.CodeBadRequest, Key: "error.upload_dimension_exceeded"},
	{Target: service.ErrUploadSceneInvalid, Code: response.CodeBadRequest, Key: "error.upload_scene_invalid"},
}
