package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/metrics"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/provider"
	"github.com/bazaar-next/internal/queue"
	"github.com/bazaar-next/internal/service"

	"github.com/hibiken/asynq"
)

const (
	emailResultSent    = "sent"
	emailResultSkipped = "skipped"
	emailResultFailed  = "failed"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedEmail, c.handleOrderPlacedEmail)
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
}

func (c *Consumer) handleOrderPlacedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderPlacedEmailPayload(task.Payload())
	if err != nil {
		logger.Warnw("worker_order_placed_email_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	order, skip, err := c.loadEmailOrder(queue.TaskOrderPlacedEmail, payload.OrderID)
	if err != nil || skip {
		return err
	}
	locale := firstNonEmpty(payload.Locale, order.Locale)
	err = c.EmailService.SendOrderPlacedEmail(order, locale)
	return c.finishEmailTask(queue.TaskOrderPlacedEmail, order, err)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderStatusEmailPayload(task.Payload())
	if err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	order, skip, err := c.loadEmailOrder(queue.TaskOrderStatusEmail, payload.OrderID)
	if err != nil || skip {
		return err
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	if !service.IsNotifiableOrderStatus(status) {
		logger.Debugw("worker_order_status_email_skip_status", "order_id", order.ID, "status", status)
		metrics.RecordEmailTask(queue.TaskOrderStatusEmail, emailResultSkipped)
		return nil
	}
	locale := firstNonEmpty(payload.Locale, order.Locale)
	err = c.EmailService.SendOrderStatusEmail(order, status, locale)
	return c.finishEmailTask(queue.TaskOrderStatusEmail, order, err)
}

// loadEmailOrder 读取任务对应订单；返回 skip 表示任务无需处理
func (c *Consumer) loadEmailOrder(taskType string, orderID uint) (*models.Order, bool, error) {
	if orderID == 0 {
		logger.Debugw("worker_email_skip_invalid_payload", "task", taskType, "order_id", orderID)
		metrics.RecordEmailTask(taskType, emailResultSkipped)
		return nil, true, nil
	}
	if c.EmailService == nil || !c.EmailService.Enabled() {
		logger.Debugw("worker_email_skip_disabled", "task", taskType, "order_id", orderID)
		metrics.RecordEmailTask(taskType, emailResultSkipped)
		return nil, true, nil
	}
	order, err := c.OrderRepo.GetByID(orderID)
	if err != nil {
		logger.Warnw("worker_email_fetch_order_failed", "task", taskType, "order_id", orderID, "error", err)
		return nil, false, err
	}
	if order == nil {
		logger.Debugw("worker_email_skip_order_not_found", "task", taskType, "order_id", orderID)
		metrics.RecordEmailTask(taskType, emailResultSkipped)
		return nil, true, nil
	}
	if strings.TrimSpace(order.CustomerEmail) == "" {
		logger.Debugw("worker_email_skip_empty_receiver", "task", taskType, "order_number", order.OrderNumber)
		metrics.RecordEmailTask(taskType, emailResultSkipped)
		return nil, true, nil
	}
	return order, false, nil
}

// finishEmailTask 记录发送结果；收件人被拒绝时不再重试
func (c *Consumer) finishEmailTask(taskType string, order *models.Order, err error) error {
	if err == nil {
		logger.Infow("worker_email_sent", "task", taskType, "order_number", order.OrderNumber)
		metrics.RecordEmailTask(taskType, emailResultSent)
		return nil
	}
	metrics.RecordEmailTask(taskType, emailResultFailed)
	logger.Warnw("worker_email_send_failed",
		"task", taskType,
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"receiver_email", order.CustomerEmail,
		"error", err,
	)
	if errors.Is(err, service.ErrEmailRecipientRejected) || errors.Is(err, service.ErrInvalidEmail) {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
