//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestSettingsEndpoint checks the admin settings view
func TestSettingsEndpoint(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/settings", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		InventoryLimit   int    `json:"inventory_limit"`
		BypassPermission string `json:"bypass_permission"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.BypassPermission == "" {
		t.Error("Expected a bypass permission")
	}
}

// TestSnapshotsUnknownUser expects 404 for a user that never saved
func TestSnapshotsUnknownUser(t *testing.T) {
	userID := time.Now().UnixNano() % 1_000_000_000
	resp, body := makeRequest(t, "GET", fmt.Sprintf("/api/v1/users/%d/snapshots", userID), nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestSnapshotsBadUserID(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/users/abc/snapshots", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestSnapshotsRequireAPIKey(t *testing.T) {
	req, err := http.NewRequest("GET", stagingURL+"/api/v1/settings", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
