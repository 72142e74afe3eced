package app

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bazaar-next/internal/config"
)

type stubService struct {
	name     string
	startErr error
	stopErr  error
	block    bool
	stopped  atomic.Bool
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *stubService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return s.stopErr
}

func TestRunnerStopsAllServicesOnCancel(t *testing.T) {
	first := &stubService{name: "http", block: true}
	second := &stubService{name: "scheduler", block: true}
	runner := NewRunner(first, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx, time.Second, nil)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancel should exit cleanly, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not exit after cancel")
	}
	if !first.stopped.Load() || !second.stopped.Load() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerReturnsFirstServiceError(t *testing.T) {
	boom := errors.New("listen failed")
	failing := &stubService{name: "http", startErr: boom}
	blocking := &stubService{name: "worker", block: true}

	err := NewRunner(failing, blocking).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected start error, got %v", err)
	}
	if !blocking.stopped.Load() {
		t.Fatalf("remaining services should be stopped")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error for empty runner")
	}
	if err := RunWithOptions(nil, Options{}); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

func TestBuildRunnerRejectsBadInput(t *testing.T) {
	if _, err := BuildRunner(nil, ModeAll); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNormalizeOptionsDefaults(t *testing.T) {
	opts := normalizeOptions(Options{})
	if opts.Mode != ModeAll {
		t.Fatalf("mode want %s got %s", ModeAll, opts.Mode)
	}
	if opts.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", opts.ShutdownTimeout)
	}
	if opts.Logger == nil {
		t.Fatalf("logger should default to global sugared logger")
	}
	if !isValidMode(ModeWorker) || isValidMode("cron") {
		t.Fatalf("unexpected mode validation")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]string{
		"":       ModeAll,
		" API ":  ModeAPI,
		"worker": ModeWorker,
		"all":    ModeAll,
	}
	for raw, want := range cases {
		got, err := ParseMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseMode("cron"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
	if _, err := BuildRunner(&config.Config{}, "cron"); err == nil {
		t.Fatalf("BuildRunner should reject unknown mode")
	}
}

func TestRunnerReportsStopErrors(t *testing.T) {
	stopBoom := errors.New("flush failed")
	svc := &stubService{name: "worker", block: true, stopErr: stopBoom}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewRunner(svc).Run(ctx, time.Second, nil)
	if !errors.Is(err, stopBoom) {
		t.Fatalf("expected stop error, got %v", err)
	}
}

func TestRunnerRejectsNilService(t *testing.T) {
	if err := NewRunner(nil).Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("nil service should be rejected before start")
	}
}

func TestListenAddr(t *testing.T) {
	if got := ListenAddr(config.ServerConfig{Host: "0.0.0.0", Port: "8080"}); got != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %q", got)
	}
	if got := ListenAddr(config.ServerConfig{Port: "8080"}); got != ":8080" {
		t.Fatalf("unexpected addr %q", got)
	}
}

func TestHTTPServiceLifecycle(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:0", http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Start(ctx)
	}()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start should return nil after cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("http service did not return after cancel")
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestHTTPServiceListenError(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:-1", http.NotFoundHandler())
	if err := svc.Start(context.Background()); err == nil {
		t.Fatalf("invalid port should fail to listen")
	}
}
