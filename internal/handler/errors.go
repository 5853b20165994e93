package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

// Request error messages
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidUserID         = "Invalid user id"
	ErrMsgInvalidSnapshotName   = "Invalid snapshot name"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgNoSnapshotsError   = "Player has no saved inventories"
	ErrMsgUnknownSnapshotErr = "No inventory with that name"
	ErrMsgLimitExceededError = "Inventory limit reached"
	ErrMsgInvalidInputError  = "Invalid input"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages safe to show callers. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoSnapshots):
		return http.StatusNotFound, ErrMsgNoSnapshotsError
	case errors.Is(err, domain.ErrUnknownSnapshot):
		return http.StatusNotFound, ErrMsgUnknownSnapshotErr
	case errors.Is(err, domain.ErrLimitExceeded):
		return http.StatusConflict, ErrMsgLimitExceededError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
