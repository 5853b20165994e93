package sim

import (
	"sync"

	"github.com/osse101/unlimited-inventories/internal/loadout"
)

// MessageKind tells chat message colors apart
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// Message is one chat line sent to the player
type Message struct {
	Kind MessageKind
	Text string
}

// Player is a connected player with a full set of equipment regions
type Player struct {
	index    int
	userID   int
	loggedIn bool
	perms    map[string]bool
	regions  map[loadout.Region][]*Item

	mu       sync.Mutex
	messages []Message
}

// NewPlayer creates a logged-in player with empty equipment and the given permissions
func NewPlayer(index, userID int, perms ...string) *Player {
	p := &Player{
		index:    index,
		userID:   userID,
		loggedIn: true,
		perms:    make(map[string]bool, len(perms)),
		regions:  make(map[loadout.Region][]*Item, len(loadout.Layout)),
	}
	for _, perm := range perms {
		p.perms[perm] = true
	}
	for _, span := range loadout.Layout {
		items := make([]*Item, span.Length)
		for i := range items {
			items[i] = &Item{}
		}
		p.regions[span.Region] = items
	}
	return p
}

func (p *Player) Index() int  { return p.index }
func (p *Player) UserID() int { return p.userID }

// Slots implements loadout.Player
func (p *Player) Slots(region loadout.Region) []loadout.Slot {
	items := p.regions[region]
	slots := make([]loadout.Slot, len(items))
	for i, it := range items {
		slots[i] = it
	}
	return slots
}

// Item returns the live slot at a region-local index
func (p *Player) Item(region loadout.Region, i int) *Item {
	return p.regions[region][i]
}

// ItemAt returns the live slot at an absolute snapshot index
func (p *Player) ItemAt(index int) (*Item, bool) {
	region, local, ok := loadout.Layout.Locate(index)
	if !ok {
		return nil, false
	}
	return p.regions[region][local], true
}

// Truncate shortens a region, simulating a host whose layout differs
func (p *Player) Truncate(region loadout.Region, length int) {
	p.regions[region] = p.regions[region][:length]
}

func (p *Player) IsLoggedIn() bool               { return p.loggedIn }
func (p *Player) SetLoggedIn(loggedIn bool)      { p.loggedIn = loggedIn }
func (p *Player) HasPermission(perm string) bool { return p.perms[perm] }

// Grant adds a permission
func (p *Player) Grant(perm string) { p.perms[perm] = true }

func (p *Player) SendInfoMessage(msg string)    { p.send(MessageInfo, msg) }
func (p *Player) SendSuccessMessage(msg string) { p.send(MessageSuccess, msg) }
func (p *Player) SendErrorMessage(msg string)   { p.send(MessageError, msg) }

func (p *Player) send(kind MessageKind, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, Message{Kind: kind, Text: text})
}

// Messages returns a copy of every chat line received so far
func (p *Player) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Message(nil), p.messages...)
}

// LastMessage returns the most recent chat line
func (p *Player) LastMessage() (Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		return Message{}, false
	}
	return p.messages[len(p.messages)-1], true
}

// ClearMessages forgets received chat lines
func (p *Player) ClearMessages() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = nil
}
