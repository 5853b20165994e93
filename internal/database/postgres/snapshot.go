package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

// SnapshotRepository implements repository.Snapshot for PostgreSQL
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// LoadAll returns every stored row in table order
func (r *SnapshotRepository) LoadAll(ctx context.Context) ([]domain.SnapshotRow, error) {
	rows, err := r.db.Query(ctx, querySelectSnapshots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshots, err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SnapshotRow, error) {
		var s domain.SnapshotRow
		var userID int64
		if err := row.Scan(&userID, &s.Name, &s.Inventory); err != nil {
			return s, err
		}
		s.UserID = int(userID)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSnapshot, err)
	}
	return result, nil
}

// InsertSnapshot adds a new row
func (r *SnapshotRepository) InsertSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	if _, err := r.db.Exec(ctx, queryInsertSnapshot, row.UserID, row.Name, row.Inventory); err != nil {
		return fmt.Errorf("%s %q for user %d: %w", ErrMsgFailedToInsertSnapshot, row.Name, row.UserID, err)
	}
	return nil
}

// UpdateSnapshot rewrites the serialized inventory of an existing row
func (r *SnapshotRepository) UpdateSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	if _, err := r.db.Exec(ctx, queryUpdateSnapshot, row.UserID, row.Name, row.Inventory); err != nil {
		return fmt.Errorf("%s %q for user %d: %w", ErrMsgFailedToUpdateSnapshot, row.Name, row.UserID, err)
	}
	return nil
}

// DeleteSnapshot removes every row matching the user and name
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, userID int, name string) error {
	if _, err := r.db.Exec(ctx, queryDeleteSnapshot, userID, name); err != nil {
		return fmt.Errorf("%s %q for user %d: %w", ErrMsgFailedToDeleteSnapshot, name, userID, err)
	}
	return nil
}

// Ping checks the pool can reach the database
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
