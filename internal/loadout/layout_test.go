package loadout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/unlimited-inventories/internal/loadout"
)

func TestLayoutOffsets(t *testing.T) {
	assert.Equal(t, 220, loadout.TotalSlots)

	expected := []loadout.Span{
		{Region: loadout.RegionInventory, Offset: 0, Length: 59},
		{Region: loadout.RegionArmor, Offset: 59, Length: 20},
		{Region: loadout.RegionDye, Offset: 79, Length: 10},
		{Region: loadout.RegionMiscEquip, Offset: 89, Length: 5},
		{Region: loadout.RegionMiscDye, Offset: 94, Length: 5},
		{Region: loadout.RegionPiggy, Offset: 99, Length: 40},
		{Region: loadout.RegionSafe, Offset: 139, Length: 40},
		{Region: loadout.RegionTrash, Offset: 179, Length: 1},
		{Region: loadout.RegionForge, Offset: 180, Length: 40},
	}
	assert.Equal(t, loadout.SlotLayout(expected), loadout.Layout)
}

func TestLocate(t *testing.T) {
	tests := []struct {
		index  int
		region loadout.Region
		local  int
	}{
		{0, loadout.RegionInventory, 0},
		{58, loadout.RegionInventory, 58},
		{59, loadout.RegionArmor, 0},
		{78, loadout.RegionArmor, 19},
		{79, loadout.RegionDye, 0},
		{93, loadout.RegionMiscEquip, 4},
		{98, loadout.RegionMiscDye, 4},
		{99, loadout.RegionPiggy, 0},
		{178, loadout.RegionSafe, 39},
		{179, loadout.RegionTrash, 0},
		{180, loadout.RegionForge, 0},
		{219, loadout.RegionForge, 39},
	}

	for _, tt := range tests {
		region, local, ok := loadout.Layout.Locate(tt.index)
		assert.True(t, ok, "index %d", tt.index)
		assert.Equal(t, tt.region, region, "index %d", tt.index)
		assert.Equal(t, tt.local, local, "index %d", tt.index)
	}
}

func TestLocateOutOfRange(t *testing.T) {
	for _, index := range []int{-1, loadout.TotalSlots, loadout.TotalSlots + 10} {
		_, _, ok := loadout.Layout.Locate(index)
		assert.False(t, ok, "index %d", index)
	}
}

func TestLocateAgreesWithSpans(t *testing.T) {
	for _, span := range loadout.Layout {
		for i := 0; i < span.Length; i++ {
			region, local, ok := loadout.Layout.Locate(span.Offset + i)
			assert.True(t, ok)
			assert.Equal(t, span.Region, region)
			assert.Equal(t, i, local)
		}
	}
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "forge", loadout.RegionForge.String())
	assert.Equal(t, "region(42)", loadout.Region(42).String())
}
