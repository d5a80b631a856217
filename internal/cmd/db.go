package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/PauloHFS/pagelinks/internal/config"
	"github.com/PauloHFS/pagelinks/internal/db"
	"github.com/PauloHFS/pagelinks/internal/logging"
)

const defaultSeedItems = 200

func initDB() (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbConn, err := sql.Open("sqlite3", config.GetSQLiteConfig().DSN(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return dbConn, nil
}

// RunSeed aplica as migrações e completa o catálogo até n itens.
func RunSeed(args []string) error {
	logging.Init()
	logger := logging.Get()

	n := defaultSeedItems
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("invalid item count %q", args[0])
		}
		n = v
	}

	dbConn, err := initDB()
	if err != nil {
		return err
	}
	defer dbConn.Close()

	ctx := context.Background()
	if err := db.RunMigrations(ctx, dbConn); err != nil {
		return fmt.Errorf("failed to run migrations during seed: %w", err)
	}
	if err := db.Seed(ctx, dbConn, n); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info("seed finished", "items", n)
	return nil
}

func RunMigrate() error {
	logging.Init()
	logger := logging.Get()

	dbConn, err := initDB()
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.RunMigrations(context.Background(), dbConn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations executed successfully")
	return nil
}
