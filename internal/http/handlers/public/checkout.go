package public

import (
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CheckoutItemRequest 购物车行
type CheckoutItemRequest struct {
	ProductID uint             `json:"product_id" binding:"required"`
	VariantID *uint            `json:"variant_id"`
	Quantity  int              `json:"quantity" binding:"required,min=1,max=9999"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CheckoutQuoteRequest 结算试算请求
type CheckoutQuoteRequest struct {
	Items            []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode       string                `json:"coupon_code"`
	ShippingMethodID uint                  `json:"shipping_method_id"`
}

// CouponValidateRequest 优惠码校验请求
type CouponValidateRequest struct {
	Code     string          `json:"code" binding:"required"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

var checkoutErrorRules = handlershared.ConcatMappedErrors(handlershared.CheckoutErrorRules, handlershared.CommonErrorRules)

// GetShippingMethods 按小计过滤可用配送方式
func (h *Handler) GetShippingMethods(c *gin.Context) {
	subtotal, err := handlershared.ParseDecimal(c.Query("subtotal"))
	if err != nil || subtotal.IsNegative() {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	methods, err := h.ShippingService.ListAvailable(subtotal)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, methods)
}

// ValidateCoupon 校验优惠码，拒绝时原样返回原因
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req CouponValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	if req.Subtotal.IsNegative() {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	validation, err := h.CouponService.Validate(req.Code, req.Subtotal)
	if err != nil {
		if service.IsCouponRejection(err) {
			respondCouponRejection(c, err)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, validation)
}

// QuoteCheckout 结算明细试算，优惠券无效时在 coupon_error 中说明
func (h *Handler) QuoteCheckout(c *gin.Context) {
	var req CheckoutQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	quote, err := h.CheckoutService.Quote(service.QuoteInput{
		Items:            toCheckoutItems(req.Items),
		CouponCode:       req.CouponCode,
		ShippingMethodID: req.ShippingMethodID,
	})
	if err != nil {
		respondMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, quote)
}

// respondCouponRejection 优惠券拒绝原因原样返回（含所需金额）
func respondCouponRejection(c *gin.Context, err error) {
	requestLog(c).Debugw("coupon_rejected", "reason", err.Error())
	response.Error(c, response.CodeBadRequest, err.Error())
}

func toCheckoutItems(items []CheckoutItemRequest) []service.CheckoutItemInput {
	result := make([]service.CheckoutItemInput, 0, len(items))
	for _, item := range items {
		result = append(result, service.CheckoutItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return result
}
