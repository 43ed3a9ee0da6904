package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/retry"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
	PingRetry       *retry.Config
}

func defaultDBConfig() *DBConfig {
	return &DBConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Minute,
		PingTimeout:     30 * time.Second,
		PingRetry:       retry.DefaultConfig(),
	}
}

// NewDatabase opens the SQL database selected by STORE_DRIVER. It returns
// (nil, nil) for the memory driver.
func NewDatabase(logger *log.Logger, appCfg *AppConfig, cfg *DBConfig) (*gorm.DB, error) {
	if cfg == nil {
		cfg = defaultDBConfig()
	}

	var (
		dialector gorm.Dialector
		sqliteDB  bool
	)

	switch appCfg.StoreDriver {
	case constants.StoreDriverMemory:
		return nil, nil
	case constants.StoreDriverSQLite:
		logger.Info("Opening sqlite database", "dsn", appCfg.SQLiteDSN)
		dialector = sqlite.Open(appCfg.SQLiteDSN)
		sqliteDB = true
	case constants.StoreDriverPostgres:
		dsn, err := buildPostgresDSN(logger, appCfg.Database)
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", appCfg.StoreDriver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("Failed to get database instance", "error", err)
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if sqliteDB {
		// sqlite allows a single writer; one connection also keeps a shared
		// in-memory database alive for the life of the process.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultDBConfig().PingTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	err = retry.Do(ctx, cfg.PingRetry, func(ctx context.Context) error {
		if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
			logger.Warn("Database ping failed", "error", pingErr)
			return pingErr
		}
		return nil
	})
	if err != nil {
		_ = sqlDB.Close()
		logger.Error("Database ping failed", "error", err)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("Database connection established successfully", "driver", appCfg.StoreDriver)
	return gdb, nil
}

func buildPostgresDSN(logger *log.Logger, cfg DatabaseConfig) (string, error) {
	if strings.TrimSpace(cfg.URL) != "" {
		logger.Info("Using APP_DATABASE_URL for database connection")
		return cfg.URL, nil
	}

	missing := []string{}

	if cfg.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}

	if cfg.Port <= 0 {
		missing = append(missing, "POSTGRES_PORT")
	}

	if cfg.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}

	if cfg.Name == "" {
		missing = append(missing, "POSTGRES_DB_NAME")
	}

	if len(missing) > 0 {
		logger.Error("Missing required database environment variables", "missing_vars", strings.Join(missing, ", "))

		return "", fmt.Errorf("missing required database env vars: %s", strings.Join(missing, ", "))
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	logger.Info("Connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"user", cfg.User,
		"dbname", cfg.Name,
		"sslmode", cfg.SSLMode,
	)
	return dsn, nil
}

func sanitizeEnv(v string) string {
	s := strings.TrimSpace(v)

	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	return s
}

func AutoMigrate(logger *log.Logger, db *gorm.DB, models ...interface{}) error {
	if db == nil {
		logger.Error("Cannot migrate: db is empty")
		return fmt.Errorf("cannot migrate: db is empty")
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Database migration failed", "error", err)
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Info("Database migration completed successfully")

	return nil
}
