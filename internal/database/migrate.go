package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/osse101/unlimited-inventories/internal/database/migrations"
)

// Migrate brings the snapshot table up to date. dialect is DialectPostgres or
// DialectSQLite.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := goose.NewProvider(goose.Dialect(dialect), db, migrations.FS)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	for _, r := range results {
		slog.Default().Info(LogMsgAppliedMigration,
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}
	return nil
}
