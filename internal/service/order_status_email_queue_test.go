package service

import (
	"testing"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/queue"
)

func TestIsNotifiableOrderStatus(t *testing.T) {
	cases := map[string]bool{
		constants.OrderStatusPending:    false,
		constants.OrderStatusConfirmed:  true,
		constants.OrderStatusProcessing: false,
		constants.OrderStatusShipped:    true,
		" delivered ":                   true,
		constants.OrderStatusCancelled:  true,
	}
	for status, want := range cases {
		if got := IsNotifiableOrderStatus(status); got != want {
			t.Fatalf("IsNotifiableOrderStatus(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestEnqueueOrderStatusEmailTaskIfEligibleSkipsWhenQueueDisabled(t *testing.T) {
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	t.Cleanup(func() {
		_ = queueClient.Close()
	})

	order := &models.Order{ID: 101, CustomerEmail: "rahim@example.com"}
	skipped, err := enqueueOrderStatusEmailTaskIfEligible(queueClient, order, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("enqueue helper returned error: %v", err)
	}
	if !skipped {
		t.Fatalf("expected task skipped when queue disabled")
	}

	skipped, err = enqueueOrderStatusEmailTaskIfEligible(nil, order, constants.OrderStatusShipped)
	if err != nil || !skipped {
		t.Fatalf("nil queue client should skip, skipped=%v err=%v", skipped, err)
	}
}
