package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/bazaar-next/internal/app"
	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	var rawMode string
	flag.StringVar(&rawMode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	mode, err := app.ParseMode(rawMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	printStartupBanner(mode)

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	release := cfg.Server.Mode == "release"
	if err := checkSecrets(cfg, release); err != nil {
		stdLog.Fatalf("%v", err)
	}
	if err := prepareDatabase(cfg, release); err != nil {
		stdLog.Fatalf("%v", err)
	}
	if release {
		gin.SetMode(gin.ReleaseMode)
	}

	defer func() {
		if err := cache.Close(); err != nil {
			logger.Warnw("redis_close_failed", "error", err)
		}
	}()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

// checkSecrets 生产环境拒绝弱 JWT 密钥，开发环境只告警
func checkSecrets(cfg *config.Config, release bool) error {
	secrets := []struct {
		name  string
		value string
	}{
		{name: "jwt", value: cfg.JWT.SecretKey},
		{name: "user_jwt", value: cfg.UserJWT.SecretKey},
	}
	for _, secret := range secrets {
		if !isWeakSecret(secret.value) {
			continue
		}
		if release {
			return fmt.Errorf("%s secret 过弱或仍为默认值，请在生产环境中配置强随机密钥", secret.name)
		}
		logger.Warnw("weak_jwt_secret", "key", secret.name)
	}
	if cfg.JWT.SecretKey != "" && cfg.JWT.SecretKey == cfg.UserJWT.SecretKey {
		logger.Warnw("shared_jwt_secret", "reason", "admin and customer tokens use the same secret")
	}
	return nil
}

// prepareDatabase 连接数据库、迁移表结构并确保存在默认管理员
func prepareDatabase(cfg *config.Config, release bool) error {
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	if release && cfg.App.DefaultAdminPassword == "" {
		logger.Warnw("default_admin_skipped", "reason", "app.default_admin_password not set")
		return nil
	}
	if err := models.InitDefaultAdmin(cfg.App.DefaultAdminUsername, cfg.App.DefaultAdminPassword); err != nil {
		logger.Warnw("default_admin_init_failed", "error", err)
	}
	return nil
}

func printStartupBanner(mode string) {
	fmt.Println(ansiCyan + ansiBold + "┌──────────────────────────────────────────────┐" + ansiReset)
	fmt.Println(ansiCyan + ansiBold + "│            Bazaar Next API (BDT)             │" + ansiReset)
	fmt.Println(ansiCyan + ansiBold + "└──────────────────────────────────────────────┘" + ansiReset)
	fmt.Println(ansiGreen + "mode: " + mode + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
