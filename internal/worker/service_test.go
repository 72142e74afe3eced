package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/bazaar-next/internal/config"
)

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(nil, &Consumer{}); !errors.Is(err, ErrQueueDisabled) {
		t.Fatalf("nil config should be rejected, got %v", err)
	}
	if _, err := NewService(&config.QueueConfig{Enabled: false}, &Consumer{}); !errors.Is(err, ErrQueueDisabled) {
		t.Fatalf("disabled queue should be rejected, got %v", err)
	}
	if _, err := NewService(&config.QueueConfig{Enabled: true}, nil); err == nil {
		t.Fatalf("nil consumer should be rejected")
	}
}

func TestUninitializedServiceLifecycle(t *testing.T) {
	var svc *Service
	if err := svc.Start(context.Background()); err == nil {
		t.Fatalf("start on nil service should fail")
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop on nil service should be a no-op, got %v", err)
	}
	if svc.Name() != "worker" {
		t.Fatalf("unexpected name %q", svc.Name())
	}
}
