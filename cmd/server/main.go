package main

import (
	"os"
	"strings"
	"syscall"

	"github.com/avtorazbor/internal/app"
	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default, set a strong random key in production")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default, replace it before going to production")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	defaultOperatorUser := os.Getenv("RAZBOR_DEFAULT_OPERATOR_USERNAME")
	defaultOperatorEmail := os.Getenv("RAZBOR_DEFAULT_OPERATOR_EMAIL")
	defaultOperatorPass := os.Getenv("RAZBOR_DEFAULT_OPERATOR_PASSWORD")
	if cfg.Server.Mode == "release" && defaultOperatorPass == "" {
		stdLog.Printf("warning: RAZBOR_DEFAULT_OPERATOR_PASSWORD not set, skipping default operator init")
	} else if err := models.InitDefaultOperator(defaultOperatorUser, defaultOperatorEmail, defaultOperatorPass); err != nil {
		stdLog.Printf("warning: default operator init failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("server exited with error: %v", err)
	}
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
