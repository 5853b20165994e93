package handler

import (
	"net/http"

	"github.com/osse101/unlimited-inventories/internal/inventory"
)

// SettingsResponse mirrors the settings file
type SettingsResponse struct {
	InventoryLimit   int    `json:"inventory_limit"`
	BypassPermission string `json:"bypass_permission"`
}

// HandleGetSettings returns the settings the store is running with
// @Summary Current store settings
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Security ApiKeyAuth
// @Router /api/v1/settings [get]
func HandleGetSettings(store inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := store.Settings()
		respondJSON(w, http.StatusOK, SettingsResponse{
			InventoryLimit:   s.InventoryLimit,
			BypassPermission: s.BypassPermission,
		})
	}
}
