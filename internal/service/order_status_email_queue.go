package service

import (
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/queue"
)

// notifiableOrderStatuses 需要通知顾客的订单状态
var notifiableOrderStatuses = map[string]struct{}{
	constants.OrderStatusConfirmed: {},
	constants.OrderStatusShipped:   {},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCancelled: {},
}

// IsNotifiableOrderStatus 判断状态变更是否需要发送邮件
func IsNotifiableOrderStatus(status string) bool {
	_, ok := notifiableOrderStatuses[strings.ToUpper(strings.TrimSpace(status))]
	return ok
}

// enqueueOrderStatusEmailTaskIfEligible 根据状态与收件邮箱决定是否入队状态邮件任务。
// 返回值 skipped 表示任务被跳过（状态无需通知、无收件邮箱或队列未启用）。
func enqueueOrderStatusEmailTaskIfEligible(queueClient *queue.Client, order *models.Order, status string) (skipped bool, err error) {
	if queueClient == nil || !queueClient.Enabled() || order == nil || order.ID == 0 {
		return true, nil
	}
	if !IsNotifiableOrderStatus(status) {
		return true, nil
	}
	if strings.TrimSpace(order.CustomerEmail) == "" {
		return true, nil
	}
	if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  strings.ToUpper(strings.TrimSpace(status)),
		Locale:  order.Locale,
	}); err != nil {
		return false, err
	}
	return false, nil
}
