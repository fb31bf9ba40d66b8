package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// app holds the process-wide dependencies, built once at start
type app struct {
	cfg          *config.Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	db           *database.Manager
}

// newApp loads and validates configuration and builds the logger
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	warnings, err := config.Validate(cfg)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	for _, w := range warnings {
		appLogger.Warn("Configuration warning", map[string]any{"warning": w})
	}

	return &app{
		cfg:          cfg,
		logger:       appLogger,
		timeProvider: timeprovider.NewRealTimeProvider(),
	}, nil
}

// connect opens the database and applies migrations
func (a *app) connect(ctx context.Context) error {
	a.db = database.NewManager(databaseConfig(a.cfg), a.logger, a.timeProvider)
	if _, err := a.db.Connect(ctx); err != nil {
		return err
	}
	if err := a.db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}
	// Sync on a terminal stdout reports EINVAL; nothing useful to do with it.
	_ = a.logger.Flush()
}

func databaseConfig(cfg *config.Config) *database.Config {
	db := cfg.Database
	return &database.Config{
		Driver:          db.Driver,
		Host:            db.Host,
		Port:            db.Port,
		Username:        db.Username,
		Password:        db.Password,
		Database:        db.Database,
		SSLMode:         db.SSLMode,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		QueryTimeout:    db.QueryTimeout,
		SlowThreshold:   db.SlowThreshold,
		LogLevel:        db.LogLevel,
		ConnectAttempts: db.ConnectAttempts,
		ConnectDelay:    db.ConnectDelay,
		Retry: database.RetryConfig{
			MaxRetries:    db.Retry.MaxRetries,
			RetryInterval: db.Retry.RetryInterval,
			MaxInterval:   db.Retry.MaxInterval,
			JitterFactor:  db.Retry.JitterFactor,
		},
	}
}
