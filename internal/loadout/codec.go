package loadout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

// Wire delimiters. Integer fields never contain either character.
const (
	FieldSeparator  = ","
	RecordSeparator = "~"

	recordFields = 3
)

// FromLive reads the persisted fields of a live slot
func FromLive(slot Slot) domain.ItemRecord {
	return domain.ItemRecord{
		NetID:  slot.NetID(),
		Prefix: slot.Prefix(),
		Stack:  slot.Stack(),
	}
}

// ToLive writes a record onto a live slot. The slot is reset to the item's
// defaults first; prefix and stack are only copied when the result holds an
// item, so clearing a slot ignores stale values left in the record.
func ToLive(slot Slot, rec domain.ItemRecord) error {
	if err := slot.SetDefaults(rec.NetID); err != nil {
		return fmt.Errorf("failed to set slot defaults for item %d: %w", rec.NetID, err)
	}
	if slot.NetID() != 0 {
		slot.SetPrefix(rec.Prefix)
		slot.SetStack(rec.Stack)
	}
	return nil
}

// EncodeRecord renders a record as "netID,stack,prefix"
func EncodeRecord(rec domain.ItemRecord) string {
	return strconv.Itoa(rec.NetID) + FieldSeparator +
		strconv.Itoa(rec.Stack) + FieldSeparator +
		strconv.Itoa(rec.Prefix)
}

// DecodeRecord parses the output of EncodeRecord. Only the field count and
// integer syntax are checked, so every encoded record decodes back.
func DecodeRecord(text string) (domain.ItemRecord, error) {
	parts := strings.Split(text, FieldSeparator)
	if len(parts) != recordFields {
		return domain.ItemRecord{}, fmt.Errorf("%w: expected %d fields, got %d in %q",
			domain.ErrMalformedRecord, recordFields, len(parts), text)
	}

	var values [recordFields]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return domain.ItemRecord{}, fmt.Errorf("%w: field %d of %q is not an integer",
				domain.ErrMalformedRecord, i, text)
		}
		values[i] = v
	}

	return domain.ItemRecord{NetID: values[0], Stack: values[1], Prefix: values[2]}, nil
}

// EncodeSnapshot joins the encoded records with RecordSeparator
func EncodeSnapshot(snap domain.Snapshot) string {
	var b strings.Builder
	// "-1234,9999,255~" is the widest record we expect
	b.Grow(len(snap) * 8)
	for i, rec := range snap {
		if i > 0 {
			b.WriteString(RecordSeparator)
		}
		b.WriteString(EncodeRecord(rec))
	}
	return b.String()
}

// DecodeSnapshot splits stored text on RecordSeparator and decodes each record.
// The length is not checked here; Apply rejects snapshots that do not fit the layout.
func DecodeSnapshot(text string) (domain.Snapshot, error) {
	parts := strings.Split(text, RecordSeparator)
	snap := make(domain.Snapshot, len(parts))
	for i, p := range parts {
		rec, err := DecodeRecord(p)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		snap[i] = rec
	}
	return snap, nil
}
