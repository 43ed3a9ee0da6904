package config

import (
	"fmt"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/circuitbreaker"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"gorm.io/gorm"
)

// NewStore builds the submission store for appCfg.StoreDriver. db must be
// non-nil for the SQL drivers, whose store is wrapped in a circuit breaker.
func NewStore(logger *log.Logger, appCfg *AppConfig, db *gorm.DB) (store.Store, error) {
	switch appCfg.StoreDriver {
	case constants.StoreDriverMemory:
		logger.Info("Using in-memory submission store")
		return store.NewMemoryStore(), nil
	case constants.StoreDriverSQLite, constants.StoreDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("store driver %q requires a database connection", appCfg.StoreDriver)
		}
		logger.Info("Using SQL submission store", "driver", appCfg.StoreDriver)
		return store.NewGuardedStore(store.NewSQLStore(db), circuitbreaker.Config{
			FailureThreshold: appCfg.StoreBreakerFailures,
			RecoveryTimeout:  appCfg.StoreBreakerCooldown,
			OnStateChange: func(from, to circuitbreaker.State) {
				logger.Warn("Submission store circuit changed state", "from", from.String(), "to", to.String())
			},
		}), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", appCfg.StoreDriver)
	}
}

// CloseStore releases the store and, for SQL drivers, the underlying connection pool.
func CloseStore(s store.Store, logger *log.Logger) {
	if s == nil {
		return
	}

	if err := s.Close(); err != nil {
		logger.Error("Failed to close submission store", "error", err)
		return
	}

	logger.Info("Submission store closed successfully")
}
