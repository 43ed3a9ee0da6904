package config

import (
	"context"
	"fmt"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/config/router"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"gorm.io/gorm"
)

type ApplicationConfig struct {
	Store           store.Store
	DB              *gorm.DB
	RouterService   *router.RouterService
	Logger          *log.Logger
	Config          *AppConfig
	TracingShutdown func(context.Context) error
}

// RouterConfig derives the HTTP layer settings from the environment config.
func (c *AppConfig) RouterConfig() *router.RouterConfig {
	return &router.RouterConfig{
		Port:                  c.AppPort,
		GinMode:               c.GinMode,
		AppEnv:                c.AppEnv,
		RequestTimeout:        c.RequestTimeout,
		MaxRequestBodyBytes:   c.MaxRequestBodyBytes,
		TrustedProxies:        c.TrustedProxies,
		CORSAllowedOrigins:    c.CORSAllowedOrigins,
		MetricsEnabled:        c.MetricsEnabled,
		TracingEnabled:        c.TracesEnabled,
		ServiceName:           c.ServiceName,
		HSTSEnabled:           c.HSTSEnabled,
		HSTSMaxAge:            c.HSTSMaxAge,
		HSTSIncludeSubdomains: c.HSTSIncludeSubdomains,
	}
}

func shutdownTracing(logger *log.Logger, shutdown func(context.Context) error) {
	if shutdown == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown tracer provider", "error", err)
	}
}

func closeDatabase(logger *log.Logger, db *gorm.DB) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance for close", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
}

func (ac *ApplicationConfig) Cleanup() {
	shutdownTracing(ac.Logger, ac.TracingShutdown)

	// For SQL drivers this also closes ac.DB.
	CloseStore(ac.Store, ac.Logger)

	if ac.RouterService != nil {
		ac.RouterService.Cleanup()
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	appConfig, err := NewAppConfig()
	if err != nil {
		return nil, err
	}

	if err := log.SetLevel(appConfig.LogLevel); err != nil {
		return nil, err
	}

	if autoMigrate {
		if err := ValidateAutoMigrateAllowed(appConfig.AppEnv); err != nil {
			return nil, err
		}
		if appConfig.AppEnv == "" {
			logger.Warn("APP_ENV not set; allowing --auto-migrate as development")
		}
	}

	tracingShutdown, err := SetupTracing(logger, appConfig)
	if err != nil {
		return nil, err
	}

	db, err := NewDatabase(logger, appConfig, nil)
	if err != nil {
		shutdownTracing(logger, tracingShutdown)
		return nil, err
	}

	// abort releases what was opened so far when a later step fails.
	abort := func(err error) (*ApplicationConfig, error) {
		closeDatabase(logger, db)
		shutdownTracing(logger, tracingShutdown)
		return nil, err
	}

	switch {
	case db == nil:
		if autoMigrate {
			logger.Warn("--auto-migrate ignored: store driver has no database", "store_driver", appConfig.StoreDriver)
		}
	// A fresh sqlite database has no tables; postgres is migrated explicitly.
	case autoMigrate || appConfig.StoreDriver == constants.StoreDriverSQLite:
		if err := AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
			return abort(err)
		}
	}

	submissionStore, err := NewStore(logger, appConfig, db)
	if err != nil {
		return abort(fmt.Errorf("create store: %w", err))
	}

	routerService := router.CreateRouterService(logger, appConfig.RouterConfig())

	logger.Info("Application configuration loaded successfully",
		"app_env", appConfig.AppEnv,
		"store_driver", appConfig.StoreDriver,
	)

	return &ApplicationConfig{
		Store:           submissionStore,
		DB:              db,
		RouterService:   routerService,
		Logger:          logger,
		Config:          appConfig,
		TracingShutdown: tracingShutdown,
	}, nil
}
