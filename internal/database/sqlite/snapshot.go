// Package sqlite stores snapshot rows in a local SQLite file for single-node
// deployments and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

const (
	querySelectSnapshots = `SELECT UserID, Name, Inventory FROM UnlimitedInventories ORDER BY rowid`
	queryInsertSnapshot  = `INSERT INTO UnlimitedInventories (UserID, Name, Inventory) VALUES (?, ?, ?)`
	queryUpdateSnapshot  = `UPDATE UnlimitedInventories SET Inventory = ? WHERE UserID = ? AND Name = ?`
	queryDeleteSnapshot  = `DELETE FROM UnlimitedInventories WHERE UserID = ? AND Name = ?`
)

// SnapshotRepository implements repository.Snapshot over database/sql
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// LoadAll returns every stored row in insertion order
func (r *SnapshotRepository) LoadAll(ctx context.Context) ([]domain.SnapshotRow, error) {
	rows, err := r.db.QueryContext(ctx, querySelectSnapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	defer rows.Close()

	var result []domain.SnapshotRow
	for rows.Next() {
		var s domain.SnapshotRow
		if err := rows.Scan(&s.UserID, &s.Name, &s.Inventory); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}
	return result, nil
}

// InsertSnapshot adds a new row
func (r *SnapshotRepository) InsertSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	if _, err := r.db.ExecContext(ctx, queryInsertSnapshot, row.UserID, row.Name, row.Inventory); err != nil {
		return fmt.Errorf("failed to insert snapshot %q for user %d: %w", row.Name, row.UserID, err)
	}
	return nil
}

// UpdateSnapshot rewrites the serialized inventory of an existing row
func (r *SnapshotRepository) UpdateSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	if _, err := r.db.ExecContext(ctx, queryUpdateSnapshot, row.Inventory, row.UserID, row.Name); err != nil {
		return fmt.Errorf("failed to update snapshot %q for user %d: %w", row.Name, row.UserID, err)
	}
	return nil
}

// DeleteSnapshot removes every row matching the user and name
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, userID int, name string) error {
	if _, err := r.db.ExecContext(ctx, queryDeleteSnapshot, userID, name); err != nil {
		return fmt.Errorf("failed to delete snapshot %q for user %d: %w", name, userID, err)
	}
	return nil
}

// Ping checks the database is reachable
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
