package loadout

import (
	"context"
	"fmt"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

// Build reads every region of the player into a new snapshot.
// It does not mutate live state.
func Build(player Player) (domain.Snapshot, error) {
	snap := make(domain.Snapshot, TotalSlots)
	for _, span := range Layout {
		slots, err := regionSlots(player, span)
		if err != nil {
			return nil, err
		}
		for i, slot := range slots {
			snap[span.Offset+i] = FromLive(slot)
		}
	}
	return snap, nil
}

// Apply writes a snapshot onto the player's live slots and notifies clients of
// every written slot. Server-side-character mode is forced for the duration
// of the write and restored afterwards, also when a write fails.
func Apply(ctx context.Context, host Host, player Player, snap domain.Snapshot) error {
	if len(snap) != TotalSlots {
		return fmt.Errorf("%w: snapshot has %d slots, layout has %d",
			domain.ErrSnapshotSizeMismatch, len(snap), TotalSlots)
	}

	release, err := forceAuthority(ctx, host, player.Index())
	if err != nil {
		return fmt.Errorf("failed to force server-side character mode: %w", err)
	}
	defer release()

	for _, span := range Layout {
		slots, err := regionSlots(player, span)
		if err != nil {
			return err
		}
		for i, slot := range slots {
			index := span.Offset + i
			if err := ToLive(slot, snap[index]); err != nil {
				return fmt.Errorf("slot %d (%s %d): %w", index, span.Region, i, err)
			}
			if err := notifySlot(ctx, host, player.Index(), index, slot); err != nil {
				return fmt.Errorf("slot %d (%s %d): %w", index, span.Region, i, err)
			}
		}
	}
	return nil
}

// notifySlot sends the slot update to everyone, then to the owner
func notifySlot(ctx context.Context, host Host, playerIndex, index int, slot Slot) error {
	for _, remote := range []int{BroadcastAll, playerIndex} {
		if err := host.SendPlayerSlot(ctx, remote, playerIndex, index, slot.Name(), slot.Prefix()); err != nil {
			return fmt.Errorf("failed to send slot update: %w", err)
		}
	}
	return nil
}

func regionSlots(player Player, span Span) ([]Slot, error) {
	slots := player.Slots(span.Region)
	if len(slots) != span.Length {
		return nil, fmt.Errorf("%w: region %s has %d live slots, layout has %d",
			domain.ErrSnapshotSizeMismatch, span.Region, len(slots), span.Length)
	}
	return slots, nil
}
