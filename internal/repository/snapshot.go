package repository

import (
	"context"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

// Snapshot defines the interface for the persistent snapshot table.
// Each mutating method issues exactly one statement keyed by (UserID, Name).
// The table declares no uniqueness constraint; callers keep names unique.
type Snapshot interface {
	// LoadAll returns every stored row
	LoadAll(ctx context.Context) ([]domain.SnapshotRow, error)

	InsertSnapshot(ctx context.Context, row domain.SnapshotRow) error
	UpdateSnapshot(ctx context.Context, row domain.SnapshotRow) error
	DeleteSnapshot(ctx context.Context, userID int, name string) error

	// Ping reports whether the backing database is reachable
	Ping(ctx context.Context) error
}
