package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"github.com/caarlos0/env/v11"
)

// AppConfig is everything the service reads from the environment.
type AppConfig struct {
	AppEnv   string `env:"APP_ENV"`
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	MaxRequestBodyBytes int64         `env:"MAX_REQUEST_BODY_BYTES" envDefault:"1048576"`
	TrustedProxies      string        `env:"TRUSTED_PROXIES"`
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGIN" envSeparator:","`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// HSTSEnabled is nil when unset; HSTS then follows APP_ENV.
	HSTSEnabled           *bool `env:"HSTS_ENABLED"`
	HSTSMaxAge            int64 `env:"HSTS_MAX_AGE" envDefault:"31536000"`
	HSTSIncludeSubdomains bool  `env:"HSTS_INCLUDE_SUBDOMAINS" envDefault:"true"`

	TracesEnabled bool   `env:"OTEL_TRACES_ENABLED" envDefault:"false"`
	ServiceName   string `env:"OTEL_SERVICE_NAME" envDefault:"orbtrix-website"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"http://localhost:4318"`

	StoreDriver   string `env:"STORE_DRIVER" envDefault:"memory"`
	SQLiteDSN     string `env:"SQLITE_DSN" envDefault:"file::memory:?cache=shared"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`

	// Circuit breaker around the SQL store.
	StoreBreakerFailures int           `env:"STORE_BREAKER_FAILURES" envDefault:"5"`
	StoreBreakerCooldown time.Duration `env:"STORE_BREAKER_COOLDOWN" envDefault:"30s"`

	Database DatabaseConfig
}

// DatabaseConfig is only read when STORE_DRIVER=postgres.
type DatabaseConfig struct {
	URL      string `env:"APP_DATABASE_URL"`
	Host     string `env:"POSTGRES_HOST"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB_NAME"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"require"`
}

func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) normalize() {
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.ServiceName = strings.TrimSpace(c.ServiceName)
	if c.ServiceName == "" {
		c.ServiceName = constants.DefaultServiceName
	}

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins

	c.Database.URL = sanitizeEnv(c.Database.URL)
	c.Database.Host = sanitizeEnv(c.Database.Host)
	c.Database.User = sanitizeEnv(c.Database.User)
	c.Database.Password = sanitizeEnv(c.Database.Password)
	c.Database.Name = sanitizeEnv(c.Database.Name)
	c.Database.SSLMode = sanitizeEnv(c.Database.SSLMode)
}

func (c *AppConfig) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}

	if c.MaxRequestBodyBytes <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_BYTES must be positive, got %d", c.MaxRequestBodyBytes)
	}

	if c.HSTSMaxAge <= 0 {
		return fmt.Errorf("HSTS_MAX_AGE must be positive, got %d", c.HSTSMaxAge)
	}

	if c.StoreBreakerFailures <= 0 {
		return fmt.Errorf("STORE_BREAKER_FAILURES must be positive, got %d", c.StoreBreakerFailures)
	}

	if c.StoreBreakerCooldown <= 0 {
		return fmt.Errorf("STORE_BREAKER_COOLDOWN must be positive, got %s", c.StoreBreakerCooldown)
	}

	switch c.StoreDriver {
	case constants.StoreDriverMemory, constants.StoreDriverSQLite, constants.StoreDriverPostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (allowed: memory, sqlite, postgres)", c.StoreDriver)
	}

	return nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *AppConfig) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
