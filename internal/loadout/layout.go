package loadout

import (
	"fmt"
	"sort"
)

// Region identifies one equipment category
type Region int

const (
	RegionInventory Region = iota
	RegionArmor
	RegionDye
	RegionMiscEquip
	RegionMiscDye
	RegionPiggy
	RegionSafe
	RegionTrash
	RegionForge
)

// Slot counts per region, as exposed by the host
const (
	InventorySlots = 59
	ArmorSlots     = 20
	DyeSlots       = 10
	MiscEquipSlots = 5
	MiscDyeSlots   = 5
	PiggySlots     = 40
	SafeSlots      = 40
	TrashSlots     = 1
	ForgeSlots     = 40
)

var regionNames = map[Region]string{
	RegionInventory: "inventory",
	RegionArmor:     "armor",
	RegionDye:       "dye",
	RegionMiscEquip: "misc_equip",
	RegionMiscDye:   "misc_dye",
	RegionPiggy:     "piggy",
	RegionSafe:      "safe",
	RegionTrash:     "trash",
	RegionForge:     "forge",
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("region(%d)", int(r))
}

// Span is the position of a region inside a snapshot
type Span struct {
	Region Region
	Offset int
	Length int
}

// End returns the first index past the region
func (s Span) End() int {
	return s.Offset + s.Length
}

// Layout is the fixed ordered table of regions. Order never changes: stored
// snapshots depend on it.
var Layout = newLayout([]struct {
	region Region
	length int
}{
	{RegionInventory, InventorySlots},
	{RegionArmor, ArmorSlots},
	{RegionDye, DyeSlots},
	{RegionMiscEquip, MiscEquipSlots},
	{RegionMiscDye, MiscDyeSlots},
	{RegionPiggy, PiggySlots},
	{RegionSafe, SafeSlots},
	{RegionTrash, TrashSlots},
	{RegionForge, ForgeSlots},
})

// TotalSlots is the length of every snapshot
var TotalSlots = Layout.Total()

// SlotLayout is an ordered list of region spans with cumulative offsets
type SlotLayout []Span

func newLayout(regions []struct {
	region Region
	length int
}) SlotLayout {
	layout := make(SlotLayout, 0, len(regions))
	offset := 0
	for _, r := range regions {
		layout = append(layout, Span{Region: r.region, Offset: offset, Length: r.length})
		offset += r.length
	}
	return layout
}

// Total returns the sum of all region lengths
func (l SlotLayout) Total() int {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].End()
}

// Span returns the span of the given region
func (l SlotLayout) Span(region Region) (Span, bool) {
	for _, s := range l {
		if s.Region == region {
			return s, true
		}
	}
	return Span{}, false
}

// Locate maps an absolute snapshot index to its region and local index.
func (l SlotLayout) Locate(index int) (Region, int, bool) {
	if index < 0 || index >= l.Total() {
		return 0, 0, false
	}
	// first span whose end lies past the index
	i := sort.Search(len(l), func(i int) bool { return l[i].End() > index })
	s := l[i]
	return s.Region, index - s.Offset, true
}
