package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/PauloHFS/pagelinks/internal/logging"
)

// Seed fills the catalog up to n items so listings have something to page
// through. Existing items count towards n.
func Seed(ctx context.Context, dbConn *sql.DB, n int) error {
	queries := New(dbConn)

	existing, err := queries.CountItems(ctx)
	if err != nil {
		return err
	}
	if existing >= n {
		logging.Get().Info("database already seeded", slog.Int("items", existing))
		return nil
	}

	tx, err := dbConn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := queries.WithTx(tx)
	for i := existing; i < n; i++ {
		if _, err := qtx.CreateItem(ctx, fmt.Sprintf("Item %d", i+1)); err != nil {
			return fmt.Errorf("failed to seed item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	logging.Get().Info("database seeded successfully",
		slog.Int("created", n-existing),
		slog.Int("items", n),
	)
	return nil
}
