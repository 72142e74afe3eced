package public

import (
	"strings"

	"github.com/bazaar-next/internal/constants"
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/i18n"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	CustomerName     string                `json:"customer_name" binding:"required,max=120"`
	CustomerEmail    string                `json:"customer_email" binding:"required,email"`
	CustomerPhone    string                `json:"customer_phone" binding:"required,bdphone"`
	ShippingAddress  string                `json:"shipping_address" binding:"required"`
	City             string                `json:"city" binding:"max=120"`
	Area             string                `json:"area" binding:"max=120"`
	PostalCode       string                `json:"postal_code" binding:"max=20"`
	Note             string                `json:"note"`
	PaymentMethod    string                `json:"payment_method"`
	Items            []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode       string                `json:"coupon_code"`
	ShippingMethodID uint                  `json:"shipping_method_id"`
	handlershared.CaptchaPayloadRequest
}

var orderLookupErrorRules = []handlershared.MappedError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
}

// PlaceOrder 创建订单（游客或已登录顾客）
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneCreateOrder, req.CaptchaPayloadRequest) {
		return
	}
	order, err := h.OrderService.Place(service.PlaceOrderInput{
		UserID:           handlershared.OptionalUserID(c),
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		ShippingAddress:  req.ShippingAddress,
		City:             req.City,
		Area:             req.Area,
		PostalCode:       req.PostalCode,
		Note:             req.Note,
		PaymentMethod:    req.PaymentMethod,
		Items:            toCheckoutItems(req.Items),
		CouponCode:       req.CouponCode,
		ShippingMethodID: req.ShippingMethodID,
		ClientIP:         c.ClientIP(),
		Locale:           i18n.ResolveLocale(c),
	})
	if err != nil {
		if service.IsCouponRejection(err) {
			respondCouponRejection(c, err)
			return
		}
		respondMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}
	response.Created(c, order)
}

// TrackOrder 订单号 + 邮箱查询订单
func (h *Handler) TrackOrder(c *gin.Context) {
	order, err := h.OrderService.Track(c.Query("order_number"), c.Query("email"))
	if err != nil {
		respondMappedError(c, err, orderLookupErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

// GetMyOrders 当前顾客订单列表
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListUserOrders(userID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, orders, page, pageSize, total)
}

// GetMyOrder 当前顾客订单详情
func (h *Handler) GetMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetUserOrder(userID, strings.TrimSpace(c.Param("order_number")))
	if err != nil {
		respondMappedError(c, err, orderLookupErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}
