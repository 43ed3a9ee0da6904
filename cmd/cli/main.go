package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/config"
	"github.com/Orbtrix-Space/Orbtrix-website/domain/contact"
	"github.com/Orbtrix-Space/Orbtrix-website/domain/waitlist"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/migrations"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		if err := runMigrate(logger); err != nil {
			logger.Error("Database migration failed", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("Database migrations completed")
		return

	case "export":
		if len(args) < 2 {
			printUsage()
			os.Exit(1)
		}
		if err := runExport(logger, args[1]); err != nil {
			logger.Error("Export failed", "error", err.Error())
			os.Exit(1)
		}
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func runMigrate(logger *log.Logger) error {
	appCfg, err := config.NewAppConfig()
	if err != nil {
		return err
	}

	var driver string
	switch appCfg.StoreDriver {
	case constants.StoreDriverPostgres:
		driver = migrations.DriverPostgres
	case constants.StoreDriverSQLite:
		driver = migrations.DriverSQLite
	default:
		return fmt.Errorf("STORE_DRIVER=%q has nothing to migrate", appCfg.StoreDriver)
	}

	db, err := config.NewDatabase(logger, appCfg, nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	return migrations.Up(ctx, sqlDB, migrations.Config{
		Driver: driver,
		Dir:    migrations.DefaultDir(appCfg.MigrationsDir, driver),
		Logger: logger,
	})
}

// runExport prints every stored record of one kind as a JSON array on stdout.
func runExport(logger *log.Logger, kind string) error {
	appCfg, err := config.NewAppConfig()
	if err != nil {
		return err
	}
	if err := checkExportable(appCfg); err != nil {
		return err
	}

	db, err := config.NewDatabase(logger, appCfg, nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	st, err := config.NewStore(logger, appCfg, db)
	if err != nil {
		return err
	}
	defer config.CloseStore(st, logger)

	// The server migrates sqlite on start; an export may run before it ever has.
	if appCfg.StoreDriver == constants.StoreDriverSQLite {
		if err := config.AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	out, err := exportRecords(ctx, st, kind)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// checkExportable rejects stores that only live inside a server process.
func checkExportable(appCfg *config.AppConfig) error {
	switch {
	case appCfg.StoreDriver == constants.StoreDriverMemory:
		return fmt.Errorf("STORE_DRIVER=memory holds nothing outside a running server")
	case appCfg.StoreDriver == constants.StoreDriverSQLite && isInMemorySQLiteDSN(appCfg.SQLiteDSN):
		return fmt.Errorf("SQLITE_DSN=%q is an in-memory database; point it at a sqlite file to export", appCfg.SQLiteDSN)
	default:
		return nil
	}
}

func isInMemorySQLiteDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func exportRecords(ctx context.Context, st store.Store, kind string) (any, error) {
	switch kind {
	case "contact":
		subs, err := st.ListContactSubmissions(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]contact.ContactSubmissionResponse, 0, len(subs))
		for _, s := range subs {
			out = append(out, contact.ToContactSubmissionResponse(s))
		}
		return out, nil
	case "waitlist":
		entries, err := st.ListWaitlistEntries(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]waitlist.WaitlistEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, waitlist.ToWaitlistEntryResponse(e))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown export kind %q (want contact or waitlist)", kind)
	}
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate                     Run SQL migrations for STORE_DRIVER and exit")
	fmt.Println("  export <contact|waitlist>   Print stored records as JSON")
}
