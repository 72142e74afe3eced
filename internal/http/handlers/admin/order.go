package admin

import (
	"strings"
	"time"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePaymentStatusRequest 更新支付状态请求
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// GetAdminOrders 订单列表，支持状态、订单号、邮箱与日期范围过滤
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	createdFrom, err := handlershared.ParseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	createdTo, err := handlershared.ParseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if createdTo != nil && len(strings.TrimSpace(c.Query("created_to"))) == len("2006-01-02") {
		end := createdTo.Add(24*time.Hour - time.Nanosecond)
		createdTo = &end
	}
	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		Status:        strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		PaymentStatus: strings.ToUpper(strings.TrimSpace(c.Query("payment_status"))),
		OrderNumber:   strings.TrimSpace(c.Query("order_number")),
		Email:         strings.TrimSpace(c.Query("email")),
		CreatedFrom:   createdFrom,
		CreatedTo:     createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, orders, page, pageSize, total)
}

// GetAdminOrder 订单详情
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetAdmin(id)
	if err != nil {
		respondMappedError(c, err, orderErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus 更新订单状态并按需通知顾客
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondMappedError(c, err, orderErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	adminID, _ := c.Get(handlershared.ContextKeyAdminID)
	requestLog(c).Infow("admin_order_status_updated", "admin_id", adminID, "order_number", order.OrderNumber, "status", order.Status)
	response.Success(c, order)
}

// UpdateOrderPaymentStatus 更新支付状态
func (h *Handler) UpdateOrderPaymentStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := h.OrderService.UpdatePaymentStatus(id, req.PaymentStatus)
	if err != nil {
		respondMappedError(c, err, orderErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除订单（回滚优惠券使用次数）
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.OrderService.Delete(id); err != nil {
		respondMappedError(c, err, orderErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}
