package sim

import (
	"errors"
	"fmt"
)

// Item id bounds accepted by SetDefaults
const (
	MinItemID = -48
	MaxItemID = 5124
)

// ErrUnknownItem is returned by SetDefaults for ids outside the catalog range
var ErrUnknownItem = errors.New("unknown item id")

// catalog holds display names for a handful of well-known items; other ids
// get a generated name.
var catalog = map[int]string{
	1:    "Iron Pickaxe",
	8:    "Torch",
	29:   "Life Crystal",
	73:   "Gold Coin",
	74:   "Platinum Coin",
	98:   "Minishark",
	188:  "Healing Potion",
	3507: "Copper Shortsword",
	4956: "Zenith",
}

// maxStacks overrides the default stack of 1 for stackable items
var maxStacks = map[int]int{
	8:   999,
	29:  9999,
	73:  100,
	74:  9999,
	188: 9999,
}

// ItemName returns the display name for an item id
func ItemName(netID int) string {
	if netID == 0 {
		return ""
	}
	if name, ok := catalog[netID]; ok {
		return name
	}
	return fmt.Sprintf("Item #%d", netID)
}

// Item is a live slot in the simulated world
type Item struct {
	netID  int
	prefix int
	stack  int
	name   string
}

func (it *Item) NetID() int   { return it.netID }
func (it *Item) Prefix() int  { return it.prefix }
func (it *Item) Stack() int   { return it.stack }
func (it *Item) Name() string { return it.name }

// MaxStack reports how many of the current item fit in one slot
func (it *Item) MaxStack() int {
	if it.netID == 0 {
		return 0
	}
	if n, ok := maxStacks[it.netID]; ok {
		return n
	}
	return 1
}

// SetDefaults resets the slot to a fresh instance of the item
func (it *Item) SetDefaults(netID int) error {
	if netID < MinItemID || netID > MaxItemID {
		return fmt.Errorf("%w: %d", ErrUnknownItem, netID)
	}
	*it = Item{netID: netID, name: ItemName(netID)}
	if netID != 0 {
		it.stack = 1
	}
	return nil
}

func (it *Item) SetPrefix(prefix int) { it.prefix = prefix }
func (it *Item) SetStack(stack int)   { it.stack = stack }

// Set places stack items with the given prefix in the slot, the way a player
// picking the item up would.
func (it *Item) Set(netID, stack, prefix int) error {
	if err := it.SetDefaults(netID); err != nil {
		return err
	}
	if netID != 0 {
		it.stack = stack
		it.prefix = prefix
	}
	return nil
}
