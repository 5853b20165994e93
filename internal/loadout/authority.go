package loadout

import (
	"context"

	"github.com/osse101/unlimited-inventories/internal/logger"
)

// forceAuthority switches the host into server-side-character mode when it is
// off and returns the function that restores the previous mode. Callers defer
// the release so the mode comes back on every exit path.
func forceAuthority(ctx context.Context, host Host, playerIndex int) (release func(), err error) {
	if host.ServerSideCharacter() {
		return func() {}, nil
	}

	if err := host.SetServerSideCharacter(ctx, true, playerIndex); err != nil {
		return nil, err
	}

	return func() {
		if err := host.SetServerSideCharacter(ctx, false, playerIndex); err != nil {
			logger.FromContext(ctx).Error("Failed to restore client-side character mode",
				"player_index", playerIndex, "error", err)
		}
	}, nil
}
