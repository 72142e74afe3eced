package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/provider"
	"github.com/bazaar-next/internal/router"
	"github.com/bazaar-next/internal/scheduler"
	"github.com/bazaar-next/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	mode, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// HTTP 服务
	if runsHTTP(mode) {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(ListenAddr(cfg.Server), engine))
	}

	// 队列消费与定时任务只在 worker 侧运行
	if runsBackground(mode) {
		if cfg.Queue.Enabled {
			consumer := worker.NewConsumer(container)
			workerService, err := worker.NewService(&cfg.Queue, consumer)
			if err != nil {
				return nil, err
			}
			services = append(services, workerService)
		} else {
			logger.Warnw("app_worker_skipped", "reason", "queue disabled")
		}

		if cfg.Scheduler.Enabled {
			schedulerService, err := scheduler.NewService(&cfg.Scheduler, container.CouponService)
			if err != nil {
				return nil, err
			}
			services = append(services, schedulerService)
		}
	}

	if len(services) == 0 {
		return nil, fmt.Errorf("%w in mode %s (check queue and scheduler config)", ErrNoServices, mode)
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	started := time.Now()
	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"addr", ListenAddr(opts.Config.Server),
		"mode", opts.Mode,
		"services", len(runner.services),
		"boot_ms", time.Since(started).Milliseconds(),
	)
	return RunWithOptions(runner, opts)
}
