package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/unlimited-inventories/internal/config"
)

// Stopper is implemented by the HTTP server
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       Stopper
	Storage      *Storage
	SettingsPath string
	Settings     config.Settings
}

// GracefulShutdown stops the server, writes the plugin settings back to disk
// and closes storage. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.SettingsPath != "" {
		slog.Info(LogMsgSavingSettings, "path", components.SettingsPath)
		if err := config.SaveSettings(components.SettingsPath, components.Settings); err != nil {
			slog.Error(LogMsgSettingsSaveFailed, "error", err)
		}
	}

	if err := components.Storage.Close(); err != nil {
		slog.Error(LogMsgStorageCloseFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
