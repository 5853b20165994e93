package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Codec errors
	ErrMsgMalformedRecord      = "malformed item record"
	ErrMsgSnapshotSizeMismatch = "snapshot size mismatch"

	// Store errors
	ErrMsgLimitExceeded   = "snapshot limit exceeded"
	ErrMsgUnknownSnapshot = "snapshot not found"
	ErrMsgNoSnapshots     = "player has no snapshots"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrMalformedRecord means stored text did not decode into an item record.
	// It is a data-integrity failure and aborts the operation that hit it.
	ErrMalformedRecord = errors.New(ErrMsgMalformedRecord)

	// ErrSnapshotSizeMismatch means a snapshot or a live region disagrees with the slot layout.
	ErrSnapshotSizeMismatch = errors.New(ErrMsgSnapshotSizeMismatch)

	// ErrLimitExceeded is returned by Save when a new name would exceed the per-player limit.
	ErrLimitExceeded = errors.New(ErrMsgLimitExceeded)

	// ErrUnknownSnapshot is returned when a known player has no snapshot with the given name.
	ErrUnknownSnapshot = errors.New(ErrMsgUnknownSnapshot)

	// ErrNoSnapshots is returned when the player has no cached record at all.
	ErrNoSnapshots = errors.New(ErrMsgNoSnapshots)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
