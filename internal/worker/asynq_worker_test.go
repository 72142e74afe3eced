package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/provider"
	"github.com/bazaar-next/internal/queue"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func newTestConsumer(t *testing.T, emailCfg config.EmailConfig) (*Consumer, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:worker_%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	container := &provider.Container{
		DB:           db,
		OrderRepo:    repository.NewOrderRepository(db),
		EmailService: service.NewEmailService(&emailCfg, "https://shop.example.com"),
	}
	return NewConsumer(container), db
}

func createWorkerOrder(t *testing.T, db *gorm.DB, email string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber:     "BD250101000001",
		CustomerName:    "Rahim",
		CustomerEmail:   email,
		CustomerPhone:   "01712345678",
		ShippingAddress: "House 1, Road 2",
		Status:          constants.OrderStatusPending,
		PaymentStatus:   constants.PaymentStatusPending,
		PaymentMethod:   constants.PaymentMethodCOD,
		Total:           models.MustMoney("1410"),
		Currency:        "BDT",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func statusTask(t *testing.T, orderID uint, status string) *asynq.Task {
	t.Helper()
	task, err := queue.NewOrderStatusEmailTask(queue.OrderStatusEmailPayload{OrderID: orderID, Status: status})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	return task
}

func TestHandleOrderPlacedEmailSkipsZeroOrderID(t *testing.T) {
	consumer, _ := newTestConsumer(t, config.EmailConfig{Enabled: true})
	task, err := queue.NewOrderPlacedEmailTask(queue.OrderPlacedEmailPayload{})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderPlacedEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestHandleOrderPlacedEmailBadPayloadSkipsRetry(t *testing.T) {
	consumer, _ := newTestConsumer(t, config.EmailConfig{Enabled: true})
	task := asynq.NewTask(queue.TaskOrderPlacedEmail, []byte("{broken"))
	err := consumer.handleOrderPlacedEmail(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestHandleOrderPlacedEmailDisabledIsNoop(t *testing.T) {
	consumer, db := newTestConsumer(t, config.EmailConfig{Enabled: false})
	order := createWorkerOrder(t, db, "rahim@example.com")
	task, err := queue.NewOrderPlacedEmailTask(queue.OrderPlacedEmailPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderPlacedEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestHandleOrderPlacedEmailMissingOrderIsNoop(t *testing.T) {
	consumer, _ := newTestConsumer(t, config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 25, From: "shop@example.com"})
	task, err := queue.NewOrderPlacedEmailTask(queue.OrderPlacedEmailPayload{OrderID: 999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderPlacedEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestHandleOrderPlacedEmailUnconfiguredSmtpRetries(t *testing.T) {
	consumer, db := newTestConsumer(t, config.EmailConfig{Enabled: true})
	order := createWorkerOrder(t, db, "rahim@example.com")
	task, err := queue.NewOrderPlacedEmailTask(queue.OrderPlacedEmailPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	err = consumer.handleOrderPlacedEmail(context.Background(), task)
	if !errors.Is(err, service.ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("smtp config errors should be retried")
	}
}

func TestHandleOrderPlacedEmailInvalidReceiverSkipsRetry(t *testing.T) {
	consumer, db := newTestConsumer(t, config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 25, From: "shop@example.com"})
	order := createWorkerOrder(t, db, "not-an-email")
	task, err := queue.NewOrderPlacedEmailTask(queue.OrderPlacedEmailPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	err = consumer.handleOrderPlacedEmail(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestHandleOrderStatusEmailSkipsSilentStatus(t *testing.T) {
	consumer, db := newTestConsumer(t, config.EmailConfig{Enabled: true})
	order := createWorkerOrder(t, db, "rahim@example.com")
	if err := consumer.handleOrderStatusEmail(context.Background(), statusTask(t, order.ID, constants.OrderStatusProcessing)); err != nil {
		t.Fatalf("expected processing status to be skipped, got %v", err)
	}
	err := consumer.handleOrderStatusEmail(context.Background(), statusTask(t, order.ID, constants.OrderStatusShipped))
	if !errors.Is(err, service.ErrEmailServiceNotConfigured) {
		t.Fatalf("expected shipped status to reach smtp, got %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty(" ", "bn", "en"); got != "bn" {
		t.Fatalf("unexpected locale: %q", got)
	}
	if got := firstNonEmpty("", "  "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
