package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/unlimited-inventories/internal/config"
	"github.com/osse101/unlimited-inventories/internal/database"
	"github.com/osse101/unlimited-inventories/internal/database/postgres"
	"github.com/osse101/unlimited-inventories/internal/database/sqlite"
	"github.com/osse101/unlimited-inventories/internal/repository"
)

// Storage is an opened, migrated snapshot table
type Storage struct {
	Repository repository.Snapshot
	close      func() error
}

// Close releases the underlying connections
func (s *Storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	err := s.close()
	s.close = nil
	slog.Info(LogMsgStorageClosed)
	return err
}

// OpenStorage opens the backend selected by cfg.StorageType and applies
// pending migrations.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	slog.Info(LogMsgOpeningStorage, "type", cfg.StorageType)

	switch cfg.StorageType {
	case config.StorageTypePostgres:
		return openPostgres(ctx, cfg)
	case config.StorageTypeSQLite:
		return openSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageType, cfg.StorageType)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	err = migrate(ctx, db, database.DialectPostgres)
	// closing the wrapper leaves the pool open
	_ = db.Close()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateSchema, err)
	}

	return &Storage{
		Repository: postgres.NewSnapshotRepository(pool),
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(ctx context.Context, path string) (*Storage, error) {
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	if err := migrate(ctx, db, database.DialectSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateSchema, err)
	}

	return &Storage{
		Repository: sqlite.NewSnapshotRepository(db),
		close:      db.Close,
	}, nil
}

func migrate(ctx context.Context, db *sql.DB, dialect string) error {
	ctx, cancel := context.WithTimeout(ctx, MigrationTimeout)
	defer cancel()
	return database.Migrate(ctx, db, dialect)
}
