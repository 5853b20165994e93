// Package inventory is the write-through snapshot store. Every player's named
// snapshots are cached in memory and every mutation is paired with exactly one
// statement against the persistent table.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/unlimited-inventories/internal/concurrency"
	"github.com/osse101/unlimited-inventories/internal/config"
	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/loadout"
	"github.com/osse101/unlimited-inventories/internal/logger"
	"github.com/osse101/unlimited-inventories/internal/metrics"
	"github.com/osse101/unlimited-inventories/internal/repository"
)

// Player is a connected, authenticated player whose live equipment can be
// captured or overwritten.
type Player interface {
	loadout.Player
	UserID() int
	HasPermission(permission string) bool
}

// SaveOutcome tells a successful Save apart from an overwrite
type SaveOutcome int

const (
	SaveCreated SaveOutcome = iota + 1
	SaveUpdated
)

func (o SaveOutcome) String() string {
	switch o {
	case SaveCreated:
		return metrics.OutcomeCreated
	case SaveUpdated:
		return metrics.OutcomeUpdated
	default:
		return "unknown"
	}
}

// Service defines the snapshot store interface
type Service interface {
	// Start loads every persisted row into the cache. The table must exist.
	Start(ctx context.Context) error

	// Get returns a copy of the cached record. It never touches persistence.
	Get(userID int) (*domain.PlayerRecord, bool)
	HasSnapshot(userID int, name string) bool
	// List returns the player's snapshot names in sorted order
	List(userID int) ([]string, error)

	Save(ctx context.Context, player Player, name string) (SaveOutcome, error)
	Load(ctx context.Context, host loadout.Host, player Player, name string) error
	Delete(ctx context.Context, userID int, name string) error

	Settings() config.Settings
}

type service struct {
	repo     repository.Snapshot
	settings config.Settings
	locks    *concurrency.LockManager[int]

	// userID -> *domain.PlayerRecord, mutated only under that user's lock
	records sync.Map
}

// NewService creates a new snapshot store
func NewService(repo repository.Snapshot, settings config.Settings, locks *concurrency.LockManager[int]) Service {
	if locks == nil {
		locks = concurrency.NewLockManager[int]()
	}
	return &service{
		repo:     repo,
		settings: settings,
		locks:    locks,
	}
}

func (s *service) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		metrics.PersistenceErrors.WithLabelValues(metrics.OperationLoadAll).Inc()
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadRows, err)
	}

	loaded := make(map[int]*domain.PlayerRecord)
	for _, row := range rows {
		snap, err := loadout.DecodeSnapshot(row.Inventory)
		if err != nil {
			return fmt.Errorf("%s %q for user %d: %w", ErrMsgFailedToDecodeRow, row.Name, row.UserID, err)
		}

		record, ok := loaded[row.UserID]
		if !ok {
			record = domain.NewPlayerRecord(row.UserID)
			loaded[row.UserID] = record
		}
		if record.HasSnapshot(row.Name) {
			log.Warn(LogMsgDuplicateRow, "user_id", row.UserID, "name", row.Name)
		}
		record.Snapshots[row.Name] = snap
	}

	s.records.Clear()
	total := 0
	for userID, record := range loaded {
		s.records.Store(userID, record)
		total += record.Count()
	}
	metrics.SnapshotsCached.Set(float64(total))

	log.Info(LogMsgCacheLoaded, "players", len(loaded), "snapshots", total, "rows", len(rows))
	return nil
}

// record returns the cached record; callers hold the user's lock
func (s *service) record(userID int) (*domain.PlayerRecord, bool) {
	v, ok := s.records.Load(userID)
	if !ok {
		return nil, false
	}
	return v.(*domain.PlayerRecord), true
}

func (s *service) Get(userID int) (*domain.PlayerRecord, bool) {
	var clone *domain.PlayerRecord
	_ = s.locks.WithLock(userID, func() error {
		if record, ok := s.record(userID); ok {
			clone = record.Clone()
		}
		return nil
	})
	return clone, clone != nil
}

func (s *service) HasSnapshot(userID int, name string) bool {
	var found bool
	_ = s.locks.WithLock(userID, func() error {
		record, ok := s.record(userID)
		found = ok && record.HasSnapshot(name)
		return nil
	})
	return found
}

func (s *service) List(userID int) ([]string, error) {
	var names []string
	err := s.locks.WithLock(userID, func() error {
		record, ok := s.record(userID)
		if !ok {
			return fmt.Errorf("%w: user %d", domain.ErrNoSnapshots, userID)
		}
		names = record.Names()
		return nil
	})
	return names, err
}

// Save captures the player's live equipment under name. The first snapshot of
// a player and overwrites of an existing name are never limited. The
// persistence statement runs before the cache is touched, so a failed
// statement leaves both unchanged.
func (s *service) Save(ctx context.Context, player Player, name string) (SaveOutcome, error) {
	log := logger.FromContext(ctx)
	userID := player.UserID()

	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	record, hasRecord := s.record(userID)
	exists := hasRecord && record.HasSnapshot(name)

	if hasRecord && !exists {
		bypass := player.HasPermission(s.settings.BypassPermission)
		if !Allowed(record.Count(), s.settings.InventoryLimit, bypass) {
			metrics.SnapshotSaves.WithLabelValues(metrics.OutcomeLimited).Inc()
			return 0, fmt.Errorf("%w: user %d holds %d of %d", domain.ErrLimitExceeded, userID, record.Count(), s.settings.InventoryLimit)
		}
	}

	snap, err := loadout.Build(player)
	if err != nil {
		metrics.SnapshotSaves.WithLabelValues(metrics.OutcomeError).Inc()
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuild, err)
	}

	row := domain.SnapshotRow{
		UserID:    userID,
		Name:      name,
		Inventory: loadout.EncodeSnapshot(snap),
	}

	outcome := SaveCreated
	if exists {
		outcome = SaveUpdated
		log.Info(LogMsgUpdatingInventory, "user_id", userID, "name", name)
		err = s.repo.UpdateSnapshot(ctx, row)
	} else {
		log.Info(LogMsgCreatingInventory, "user_id", userID, "name", name)
		err = s.repo.InsertSnapshot(ctx, row)
	}
	if err != nil {
		op := metrics.OperationInsert
		if exists {
			op = metrics.OperationUpdate
		}
		metrics.PersistenceErrors.WithLabelValues(op).Inc()
		metrics.SnapshotSaves.WithLabelValues(metrics.OutcomeError).Inc()
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPersist, err)
	}

	if !hasRecord {
		record = domain.NewPlayerRecord(userID)
		s.records.Store(userID, record)
	}
	record.Snapshots[name] = snap

	if outcome == SaveCreated {
		metrics.SnapshotsCached.Inc()
	}
	metrics.SnapshotSaves.WithLabelValues(outcome.String()).Inc()
	return outcome, nil
}

// Load overwrites the player's live equipment with the named snapshot
func (s *service) Load(ctx context.Context, host loadout.Host, player Player, name string) error {
	userID := player.UserID()

	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	snap, err := s.lookup(userID, name)
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return err
	}

	if err := loadout.Apply(ctx, host, player, snap); err != nil {
		metrics.SnapshotLoads.WithLabelValues(metrics.OutcomeError).Inc()
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToApply, name, err)
	}

	metrics.SnapshotLoads.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.FromContext(ctx).Info(LogMsgLoadedInventory, "user_id", userID, "name", name)
	return nil
}

// Delete removes the named snapshot from the table and then from the cache.
// A record left with no snapshots stays cached.
func (s *service) Delete(ctx context.Context, userID int, name string) error {
	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.lookup(userID, name); err != nil {
		metrics.SnapshotDeletes.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return err
	}

	logger.FromContext(ctx).Info(LogMsgDeletingInventory, "user_id", userID, "name", name)
	if err := s.repo.DeleteSnapshot(ctx, userID, name); err != nil {
		metrics.PersistenceErrors.WithLabelValues(metrics.OperationDelete).Inc()
		metrics.SnapshotDeletes.WithLabelValues(metrics.OutcomeError).Inc()
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRows, err)
	}

	record, _ := s.record(userID)
	delete(record.Snapshots, name)

	metrics.SnapshotsCached.Dec()
	metrics.SnapshotDeletes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}

// lookup finds a cached snapshot; callers hold the user's lock
func (s *service) lookup(userID int, name string) (domain.Snapshot, error) {
	record, ok := s.record(userID)
	if !ok {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNoSnapshots, userID)
	}
	snap, ok := record.Snapshots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q for user %d", domain.ErrUnknownSnapshot, name, userID)
	}
	return snap, nil
}

func (s *service) Settings() config.Settings {
	return s.settings
}
