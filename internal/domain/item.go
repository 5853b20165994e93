package domain

// ItemRecord is the persisted state of a single equipment slot.
// A record with NetID 0 or Stack 0 stands for an empty slot.
type ItemRecord struct {
	NetID  int `json:"net_id"`
	Prefix int `json:"prefix"`
	Stack  int `json:"stack"`
}

// IsEmpty reports whether the record represents an empty slot
func (r ItemRecord) IsEmpty() bool {
	return r.NetID == 0 || r.Stack == 0
}
