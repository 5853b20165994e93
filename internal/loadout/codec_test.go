package loadout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/host/sim"
	"github.com/osse101/unlimited-inventories/internal/loadout"
)

func TestRecordRoundTrip(t *testing.T) {
	records := []domain.ItemRecord{
		{},
		{NetID: 4956, Prefix: 81, Stack: 1},
		{NetID: 74, Prefix: 0, Stack: 9999},
		{NetID: -13, Prefix: 255, Stack: 1},
		{NetID: 1, Prefix: 300, Stack: 1},
		{NetID: 73, Prefix: -1, Stack: -5},
	}

	for _, rec := range records {
		got, err := loadout.DecodeRecord(loadout.EncodeRecord(rec))
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}
}

func TestEncodeRecordFieldOrder(t *testing.T) {
	assert.Equal(t, "98,1,17", loadout.EncodeRecord(domain.ItemRecord{NetID: 98, Prefix: 17, Stack: 1}))
}

func TestDecodeRecordMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"too few fields", "1,2"},
		{"too many fields", "1,2,3,4"},
		{"not an integer", "1,two,3"},
		{"wrong separator", "1|2|3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadout.DecodeRecord(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := make(domain.Snapshot, loadout.TotalSlots)
	snap[0] = domain.ItemRecord{NetID: 3507, Prefix: 12, Stack: 1}
	snap[loadout.TotalSlots-1] = domain.ItemRecord{NetID: 8, Stack: 250}

	text := loadout.EncodeSnapshot(snap)
	assert.Equal(t, loadout.TotalSlots-1, strings.Count(text, loadout.RecordSeparator))

	got, err := loadout.DecodeSnapshot(text)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestDecodeSnapshotReportsPosition(t *testing.T) {
	_, err := loadout.DecodeSnapshot("1,1,0~0,0,0~bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "record 2")
}

func TestToLiveClearsStaleValues(t *testing.T) {
	p := sim.NewPlayer(0, 1)
	slot := p.Item(loadout.RegionInventory, 0)
	require.NoError(t, slot.Set(98, 1, 17))

	// an empty record may still carry leftovers from an earlier item
	require.NoError(t, loadout.ToLive(slot, domain.ItemRecord{NetID: 0, Prefix: 42, Stack: 7}))

	assert.Equal(t, 0, slot.NetID())
	assert.Equal(t, 0, slot.Prefix())
	assert.Equal(t, 0, slot.Stack())
}

func TestToLiveCopiesFields(t *testing.T) {
	p := sim.NewPlayer(0, 1)
	slot := p.Item(loadout.RegionArmor, 3)

	require.NoError(t, loadout.ToLive(slot, domain.ItemRecord{NetID: 188, Prefix: 0, Stack: 30}))

	assert.Equal(t, domain.ItemRecord{NetID: 188, Prefix: 0, Stack: 30}, loadout.FromLive(slot))
	assert.Equal(t, "Healing Potion", slot.Name())
}

func TestToLiveWriteError(t *testing.T) {
	p := sim.NewPlayer(0, 1)
	err := loadout.ToLive(p.Item(loadout.RegionInventory, 0), domain.ItemRecord{NetID: sim.MaxItemID + 1, Stack: 1})
	assert.ErrorIs(t, err, sim.ErrUnknownItem)
}

func BenchmarkEncodeSnapshot(b *testing.B) {
	snap := make(domain.Snapshot, loadout.TotalSlots)
	for i := range snap {
		snap[i] = domain.ItemRecord{NetID: i + 1, Prefix: i % 80, Stack: i % 999}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = loadout.EncodeSnapshot(snap)
	}
}

func BenchmarkDecodeSnapshot(b *testing.B) {
	snap := make(domain.Snapshot, loadout.TotalSlots)
	for i := range snap {
		snap[i] = domain.ItemRecord{NetID: i + 1, Prefix: i % 80, Stack: i % 999}
	}
	text := loadout.EncodeSnapshot(snap)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := loadout.DecodeSnapshot(text); err != nil {
			b.Fatal(err)
		}
	}
}
