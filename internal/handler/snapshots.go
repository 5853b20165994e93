package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/inventory"
	"github.com/osse101/unlimited-inventories/internal/loadout"
	"github.com/osse101/unlimited-inventories/internal/logger"
)

// URL parameters
const (
	ParamUserID = "userID"
	ParamName   = "name"
)

// SnapshotListResponse lists a player's snapshot names
type SnapshotListResponse struct {
	UserID int      `json:"user_id"`
	Names  []string `json:"names"`
	Count  int      `json:"count"`
	Limit  int      `json:"limit"`
}

// SlotResponse describes one non-empty slot of a snapshot
type SlotResponse struct {
	Index  int    `json:"index"`
	Region string `json:"region"`
	Slot   int    `json:"slot"`
	NetID  int    `json:"net_id"`
	Stack  int    `json:"stack"`
	Prefix int    `json:"prefix"`
}

// SnapshotResponse is the decoded content of one snapshot
type SnapshotResponse struct {
	UserID     int            `json:"user_id"`
	Name       string         `json:"name"`
	TotalSlots int            `json:"total_slots"`
	Slots      []SlotResponse `json:"slots"`
}

// snapshotParams holds validated path parameters
type snapshotParams struct {
	UserID int    `validate:"gte=0"`
	Name   string `validate:"omitempty,max=255,snapshotname"`
}

// HandleListSnapshots returns the sorted snapshot names of a player
// @Summary List a player's snapshots
// @Tags snapshots
// @Produce json
// @Param userID path int true "Player account id"
// @Success 200 {object} SnapshotListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/snapshots [get]
func HandleListSnapshots(store inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseSnapshotParams(w, r, false)
		if !ok {
			return
		}

		names, err := store.List(params.UserID)
		if err != nil {
			respondServiceError(w, r, "List snapshots", err)
			return
		}

		respondJSON(w, http.StatusOK, SnapshotListResponse{
			UserID: params.UserID,
			Names:  names,
			Count:  len(names),
			Limit:  store.Settings().InventoryLimit,
		})
	}
}

// HandleGetSnapshot returns the non-empty slots of one snapshot
// @Summary Inspect a snapshot
// @Tags snapshots
// @Produce json
// @Param userID path int true "Player account id"
// @Param name path string true "Snapshot name"
// @Success 200 {object} SnapshotResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/snapshots/{name} [get]
func HandleGetSnapshot(store inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseSnapshotParams(w, r, true)
		if !ok {
			return
		}

		record, found := store.Get(params.UserID)
		if !found {
			respondServiceError(w, r, "Get snapshot", domain.ErrNoSnapshots)
			return
		}
		snap, found := record.Snapshots[params.Name]
		if !found {
			respondServiceError(w, r, "Get snapshot", domain.ErrUnknownSnapshot)
			return
		}

		respondJSON(w, http.StatusOK, SnapshotResponse{
			UserID:     params.UserID,
			Name:       params.Name,
			TotalSlots: len(snap),
			Slots:      describeSlots(snap),
		})
	}
}

// HandleDeleteSnapshot removes a snapshot from the store
// @Summary Delete a snapshot
// @Tags snapshots
// @Produce json
// @Param userID path int true "Player account id"
// @Param name path string true "Snapshot name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/snapshots/{name} [delete]
func HandleDeleteSnapshot(store inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseSnapshotParams(w, r, true)
		if !ok {
			return
		}

		if err := store.Delete(r.Context(), params.UserID, params.Name); err != nil {
			respondServiceError(w, r, "Delete snapshot", err)
			return
		}

		logger.FromContext(r.Context()).Info("Snapshot deleted via admin API",
			"user_id", params.UserID, "name", params.Name)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Deleted inventory '" + params.Name + "'."})
	}
}

// describeSlots lists the non-empty slots with their region coordinates
func describeSlots(snap domain.Snapshot) []SlotResponse {
	slots := make([]SlotResponse, 0)
	for i, rec := range snap {
		if rec.IsEmpty() {
			continue
		}
		region, local, ok := loadout.Layout.Locate(i)
		name := "unknown"
		if ok {
			name = region.String()
		}
		slots = append(slots, SlotResponse{
			Index:  i,
			Region: name,
			Slot:   local,
			NetID:  rec.NetID,
			Stack:  rec.Stack,
			Prefix: rec.Prefix,
		})
	}
	return slots
}

// parseSnapshotParams reads and validates the user id and, when withName is
// set, the snapshot name. On failure the response has been written.
func parseSnapshotParams(w http.ResponseWriter, r *http.Request, withName bool) (snapshotParams, bool) {
	var params snapshotParams

	userID, err := strconv.Atoi(chi.URLParam(r, ParamUserID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return params, false
	}
	params.UserID = userID

	if withName {
		name := chi.URLParam(r, ParamName)
		// chi matches on the raw path when the request carried escapes it
		// could not round-trip, leaving the parameter encoded
		if r.URL.RawPath != "" {
			if name, err = url.PathUnescape(name); err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSnapshotName)
				return params, false
			}
		}
		if name == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSnapshotName)
			return params, false
		}
		params.Name = name
	}

	if err := GetValidator().ValidateStruct(params); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return params, false
	}
	return params, true
}
