package admin

import (
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ShippingMethodRequest 配送方式创建/更新请求
type ShippingMethodRequest struct {
	Name          string           `json:"name" binding:"required,max=120"`
	Description   string           `json:"description"`
	Cost          decimal.Decimal  `json:"cost"`
	MinOrderValue *decimal.Decimal `json:"min_order_value"`
	MaxOrderValue *decimal.Decimal `json:"max_order_value"`
	EstimatedDays string           `json:"estimated_days" binding:"max=60"`
	SortOrder     int              `json:"sort_order"`
	IsActive      *bool            `json:"is_active"`
}

func (r ShippingMethodRequest) toInput() service.ShippingMethodInput {
	return service.ShippingMethodInput{
		Name:          r.Name,
		Description:   r.Description,
		Cost:          r.Cost,
		MinOrderValue: r.MinOrderValue,
		MaxOrderValue: r.MaxOrderValue,
		EstimatedDays: r.EstimatedDays,
		SortOrder:     r.SortOrder,
		IsActive:      boolOrDefault(r.IsActive, true),
	}
}

// GetAdminShippingMethods 配送方式列表
func (h *Handler) GetAdminShippingMethods(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	methods, total, err := h.ShippingService.List(repository.ShippingMethodListFilter{
		Page:     page,
		PageSize: pageSize,
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, methods, page, pageSize, total)
}

// GetAdminShippingMethod 配送方式详情
func (h *Handler) GetAdminShippingMethod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	method, err := h.ShippingService.Get(id)
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, method)
}

// CreateShippingMethod 创建配送方式
func (h *Handler) CreateShippingMethod(c *gin.Context) {
	var req ShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	method, err := h.ShippingService.Create(req.toInput())
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, method)
}

// UpdateShippingMethod 更新配送方式
func (h *Handler) UpdateShippingMethod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	method, err := h.ShippingService.Update(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, method)
}

// DeleteShippingMethod 删除配送方式（订单保留名称快照）
func (h *Handler) DeleteShippingMethod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ShippingService.Delete(id); err != nil {
		respondMappedError(c, err, couponErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}
