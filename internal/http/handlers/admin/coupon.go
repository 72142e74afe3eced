package admin

import (
	"strings"
	"time"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CouponRequest 优惠券创建/更新请求
type CouponRequest struct {
	Code        string           `json:"code" binding:"required,max=64"`
	Description string           `json:"description"`
	Type        string           `json:"type" binding:"required,oneof=PERCENTAGE FIXED percentage fixed"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase decimal.Decimal  `json:"min_purchase"`
	MaxDiscount *decimal.Decimal `json:"max_discount"`
	UsageLimit  *int             `json:"usage_limit" binding:"omitempty,min=0"`
	ValidFrom   time.Time        `json:"valid_from" binding:"required"`
	ValidTo     time.Time        `json:"valid_to" binding:"required"`
	Active      *bool            `json:"active"`
}

func (r CouponRequest) toInput() service.CouponInput {
	return service.CouponInput{
		Code:        r.Code,
		Description: r.Description,
		Type:        r.Type,
		Value:       r.Value,
		MinPurchase: r.MinPurchase,
		MaxDiscount: r.MaxDiscount,
		UsageLimit:  r.UsageLimit,
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		Active:      boolOrDefault(r.Active, true),
	}
}

// GetAdminCoupons 优惠券列表
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	coupons, total, err := h.CouponService.List(repository.CouponListFilter{
		Page:     page,
		PageSize: pageSize,
		Code:     strings.TrimSpace(c.Query("code")),
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, coupons, page, pageSize, total)
}

// GetAdminCoupon 优惠券详情
func (h *Handler) GetAdminCoupon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	coupon, err := h.CouponService.Get(id)
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, coupon)
}

// GetAdminCouponUsages 优惠券使用记录
func (h *Handler) GetAdminCouponUsages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	usages, total, err := h.CouponService.ListUsages(id, page, pageSize)
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.internal")
		return
	}
	handlershared.Page(c, usages, page, pageSize, total)
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	coupon, err := h.CouponService.Create(req.toInput())
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	coupon, err := h.CouponService.Update(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.CouponService.Delete(id); err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}
