package config

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("database url wins", func(t *testing.T) {
		dsn, err := buildPostgresDSN(logger, DatabaseConfig{URL: "postgres://u:p@db:5432/orbtrix", Host: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db:5432/orbtrix", dsn)
	})

	t.Run("from parts", func(t *testing.T) {
		dsn, err := buildPostgresDSN(logger, DatabaseConfig{
			Host: "db", Port: 5432, User: "orbtrix", Password: "pw", Name: "website", SSLMode: "disable",
		})
		require.NoError(t, err)
		assert.Equal(t, "host=db port=5432 user=orbtrix password=pw dbname=website sslmode=disable", dsn)
	})

	t.Run("missing parts", func(t *testing.T) {
		_, err := buildPostgresDSN(logger, DatabaseConfig{Port: 5432})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POSTGRES_HOST")
		assert.Contains(t, err.Error(), "POSTGRES_USER")
		assert.Contains(t, err.Error(), "POSTGRES_DB_NAME")
	})
}

func TestSanitizeEnv(t *testing.T) {
	assert.Equal(t, "value", sanitizeEnv(`  "value" `))
	assert.Equal(t, "value", sanitizeEnv(`'value'`))
	assert.Equal(t, `"value`, sanitizeEnv(`"value`))
}

func TestNewDatabase_MemoryDriverHasNoDatabase(t *testing.T) {
	db, err := NewDatabase(log.NewLoggerWithJSONOutput(), &AppConfig{StoreDriver: constants.StoreDriverMemory}, nil)

	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestNewDatabase_SQLiteBacksSQLStore(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()
	appCfg := &AppConfig{
		StoreDriver: constants.StoreDriverSQLite,
		SQLiteDSN:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	db, err := NewDatabase(logger, appCfg, &DBConfig{PingTimeout: time.Second})
	require.NoError(t, err)
	require.NotNil(t, db)
	require.NoError(t, AutoMigrate(logger, db, models.ModelRegistry...))

	s, err := NewStore(logger, appCfg, db)
	require.NoError(t, err)
	t.Cleanup(func() { CloseStore(s, logger) })

	assert.IsType(t, &store.GuardedStore{}, s)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestNewStore(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	s, err := NewStore(logger, &AppConfig{StoreDriver: constants.StoreDriverMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, s)

	_, err = NewStore(logger, &AppConfig{StoreDriver: constants.StoreDriverPostgres}, nil)
	assert.Error(t, err)

	_, err = NewStore(logger, &AppConfig{StoreDriver: "redis"}, nil)
	assert.Error(t, err)
}
