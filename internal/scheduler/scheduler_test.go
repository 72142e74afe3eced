package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bazaar-next/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls atomic.Int32
	count int64
	err   error
}

func (f *fakeSweeper) DeactivateExpired() (int64, error) {
	f.calls.Add(1)
	return f.count, f.err
}

func TestNewServiceRequiresEnabledConfig(t *testing.T) {
	_, err := NewService(&config.SchedulerConfig{Enabled: false}, &fakeSweeper{})
	require.Error(t, err)

	_, err = NewService(nil, &fakeSweeper{})
	require.Error(t, err)

	_, err = NewService(&config.SchedulerConfig{Enabled: true}, nil)
	require.Error(t, err)
}

func TestNewServiceRejectsInvalidSpec(t *testing.T) {
	_, err := NewService(&config.SchedulerConfig{Enabled: true, CouponSweepSpec: "not a cron"}, &fakeSweeper{})
	require.Error(t, err)
}

func TestNewServiceDefaultSpec(t *testing.T) {
	svc, err := NewService(&config.SchedulerConfig{Enabled: true}, &fakeSweeper{})
	require.NoError(t, err)
	assert.Equal(t, "scheduler", svc.Name())
	assert.Len(t, svc.cron.Entries(), 1)
}

func TestRunCouponSweep(t *testing.T) {
	sweeper := &fakeSweeper{count: 3}
	svc, err := NewService(&config.SchedulerConfig{Enabled: true}, sweeper)
	require.NoError(t, err)

	svc.runCouponSweep()
	assert.Equal(t, int32(1), sweeper.calls.Load())

	sweeper.err = errors.New("db down")
	svc.runCouponSweep()
	assert.Equal(t, int32(2), sweeper.calls.Load())
}

func TestStartStopsOnContextCancel(t *testing.T) {
	svc, err := NewService(&config.SchedulerConfig{Enabled: true, CouponSweepSpec: "@every 1h"}, &fakeSweeper{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	require.NoError(t, svc.Stop(stopCtx))
}

func TestNilServiceIsSafe(t *testing.T) {
	var svc *Service
	assert.Equal(t, "scheduler", svc.Name())
	assert.NoError(t, svc.Stop(context.Background()))
	assert.Error(t, svc.Start(context.Background()))
}
