// Package scheduler 进程内定时任务，目前只有过期优惠券清理
package scheduler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/metrics"

	"github.com/robfig/cron/v3"
)

const (
	// JobCouponSweep 过期优惠券停用任务
	JobCouponSweep = "coupon_sweep"

	defaultCouponSweepSpec = "@every 10m"
)

// CouponSweeper 停用过期优惠券
type CouponSweeper interface {
	DeactivateExpired() (int64, error)
}

// Service 定时任务服务
type Service struct {
	name    string
	cron    *cron.Cron
	coupons CouponSweeper
}

// NewService 创建定时任务服务
func NewService(cfg *config.SchedulerConfig, coupons CouponSweeper) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("scheduler disabled")
	}
	if coupons == nil {
		return nil, errors.New("coupon sweeper is nil")
	}
	spec := strings.TrimSpace(cfg.CouponSweepSpec)
	if spec == "" {
		spec = defaultCouponSweepSpec
	}
	s := &Service{
		name:    "scheduler",
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		coupons: coupons,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.runCouponSweep() }); err != nil {
		return nil, err
	}
	logger.Infow("scheduler_job_registered", "job", JobCouponSweep, "spec", spec)
	return s, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "scheduler"
	}
	return s.name
}

// Start 启动定时器并阻塞到 ctx 结束
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return errors.New("scheduler not initialized")
	}
	s.cron.Start()
	<-ctx.Done()
	return nil
}

// Stop 停止定时器，等待运行中的任务结束
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return nil
	}
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runCouponSweep 执行一次过期优惠券停用
func (s *Service) runCouponSweep() {
	started := time.Now()
	count, err := s.coupons.DeactivateExpired()
	metrics.RecordJobRun(JobCouponSweep, time.Since(started), err == nil)
	if err != nil {
		logger.Errorw("scheduler_coupon_sweep_failed", "error", err)
		return
	}
	if count > 0 {
		logger.Infow("scheduler_coupon_sweep_done", "deactivated", count)
	}
}
