package domain

import (
	"maps"
	"slices"
)

// Snapshot is a flat, ordered record of every equipment slot a player carries.
// Region boundaries are recovered purely from positional offsets, so the order
// of records is significant and the length is fixed by the slot layout.
type Snapshot []ItemRecord

// Clone returns an independent copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	return slices.Clone(s)
}

// PlayerRecord holds the named snapshots of one player account.
// Names are case-sensitive and unique per player.
type PlayerRecord struct {
	UserID    int                 `json:"user_id"`
	Snapshots map[string]Snapshot `json:"snapshots"`
}

// NewPlayerRecord creates an empty record for the given user
func NewPlayerRecord(userID int) *PlayerRecord {
	return &PlayerRecord{
		UserID:    userID,
		Snapshots: make(map[string]Snapshot),
	}
}

// HasSnapshot reports whether a snapshot with the exact name exists
func (p *PlayerRecord) HasSnapshot(name string) bool {
	_, ok := p.Snapshots[name]
	return ok
}

// Count returns the number of stored snapshots
func (p *PlayerRecord) Count() int {
	return len(p.Snapshots)
}

// Names returns the snapshot names in sorted order
func (p *PlayerRecord) Names() []string {
	return slices.Sorted(maps.Keys(p.Snapshots))
}

// Clone returns a deep copy that shares no memory with the receiver
func (p *PlayerRecord) Clone() *PlayerRecord {
	c := NewPlayerRecord(p.UserID)
	for name, snap := range p.Snapshots {
		c.Snapshots[name] = snap.Clone()
	}
	return c
}

// SnapshotRow is the persistent form of one named snapshot.
// (UserID, Name) is the natural key; Inventory holds the encoded snapshot.
type SnapshotRow struct {
	UserID    int    `db:"UserID"`
	Name      string `db:"Name"`
	Inventory string `db:"Inventory"`
}
