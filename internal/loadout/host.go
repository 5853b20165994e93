// Package loadout translates a player's live equipment into a flat snapshot
// and back. The live object model belongs to the host game; this package only
// sees it through the interfaces below.
package loadout

import "context"

// Slot is one live equipment slot owned by the host.
type Slot interface {
	NetID() int
	Prefix() int
	Stack() int
	// Name is the display name the host shows for the slot's current item
	Name() string

	// SetDefaults resets the slot to the default state of the given item type.
	// An id of 0 clears the slot.
	SetDefaults(netID int) error
	SetPrefix(prefix int)
	SetStack(stack int)
}

// Player exposes the live equipment regions of one connected player.
type Player interface {
	// Index is the player's connection slot in the host world
	Index() int
	// Slots returns the live slots of a region in their natural order.
	// The trash region has exactly one slot.
	Slots(region Region) []Slot
}

// Host is the part of the game process that owns authority mode and
// broadcasts slot updates to clients.
type Host interface {
	ServerSideCharacter() bool
	// SetServerSideCharacter switches the authority mode and tells the given
	// player about the change.
	SetServerSideCharacter(ctx context.Context, enabled bool, playerIndex int) error
	// SendPlayerSlot notifies remoteClient (BroadcastAll for everyone) that the
	// slot of playerIndex now holds the named item with the given prefix.
	SendPlayerSlot(ctx context.Context, remoteClient, playerIndex, slot int, name string, prefix int) error
}

// BroadcastAll addresses a slot notification to every connected client
const BroadcastAll = -1
