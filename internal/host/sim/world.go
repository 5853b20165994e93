// Package sim is an in-memory stand-in for the host game process. It backs
// the interactive console and the tests of every package that needs live
// player state.
package sim

import (
	"context"
	"sync"

	"github.com/osse101/unlimited-inventories/internal/loadout"
)

// SlotPacket records one slot-update notification
type SlotPacket struct {
	RemoteClient int
	PlayerIndex  int
	Slot         int
	Name         string
	Prefix       int
}

// ModeChange records one authority-mode switch and the player told about it
type ModeChange struct {
	Enabled     bool
	PlayerIndex int
}

// World implements loadout.Host
type World struct {
	mu          sync.Mutex
	ssc         bool
	packets     []SlotPacket
	modeChanges []ModeChange

	// SendErr, when set, is returned by every SendPlayerSlot call
	SendErr error
}

var _ loadout.Host = (*World)(nil)

// NewWorld creates a world with the given server-side-character mode
func NewWorld(serverSideCharacter bool) *World {
	return &World{ssc: serverSideCharacter}
}

func (w *World) ServerSideCharacter() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ssc
}

func (w *World) SetServerSideCharacter(_ context.Context, enabled bool, playerIndex int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ssc = enabled
	w.modeChanges = append(w.modeChanges, ModeChange{Enabled: enabled, PlayerIndex: playerIndex})
	return nil
}

func (w *World) SendPlayerSlot(_ context.Context, remoteClient, playerIndex, slot int, name string, prefix int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.SendErr != nil {
		return w.SendErr
	}
	w.packets = append(w.packets, SlotPacket{
		RemoteClient: remoteClient,
		PlayerIndex:  playerIndex,
		Slot:         slot,
		Name:         name,
		Prefix:       prefix,
	})
	return nil
}

// Packets returns a copy of the slot notifications sent so far
func (w *World) Packets() []SlotPacket {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]SlotPacket(nil), w.packets...)
}

// ModeChanges returns a copy of the authority-mode switches so far
func (w *World) ModeChanges() []ModeChange {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ModeChange(nil), w.modeChanges...)
}

// Reset forgets recorded packets and mode changes
func (w *World) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.packets = nil
	w.modeChanges = nil
}
