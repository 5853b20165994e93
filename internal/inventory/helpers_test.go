package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/unlimited-inventories/internal/concurrency"
	"github.com/osse101/unlimited-inventories/internal/config"
	"github.com/osse101/unlimited-inventories/internal/database/sqlite"
	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/inventory"
	"github.com/osse101/unlimited-inventories/internal/repository"
)

// recordingRepo counts the statements issued against a real repository
type recordingRepo struct {
	repository.Snapshot

	mu      sync.Mutex
	inserts int
	updates int
	deletes int
}

func (r *recordingRepo) InsertSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	r.mu.Lock()
	r.inserts++
	r.mu.Unlock()
	return r.Snapshot.InsertSnapshot(ctx, row)
}

func (r *recordingRepo) UpdateSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	r.mu.Lock()
	r.updates++
	r.mu.Unlock()
	return r.Snapshot.UpdateSnapshot(ctx, row)
}

func (r *recordingRepo) DeleteSnapshot(ctx context.Context, userID int, name string) error {
	r.mu.Lock()
	r.deletes++
	r.mu.Unlock()
	return r.Snapshot.DeleteSnapshot(ctx, userID, name)
}

func (r *recordingRepo) counts() (inserts, updates, deletes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inserts, r.updates, r.deletes
}

func settingsWithLimit(limit int) config.Settings {
	s := config.DefaultSettings()
	s.InventoryLimit = limit
	return s
}

// newStore returns a started store over an in-memory database
func newStore(t *testing.T, settings config.Settings) (inventory.Service, *recordingRepo) {
	t.Helper()
	repo := &recordingRepo{Snapshot: sqlite.NewTestRepository(t)}
	svc := inventory.NewService(repo, settings, concurrency.NewLockManager[int]())
	require.NoError(t, svc.Start(context.Background()))
	return svc, repo
}
