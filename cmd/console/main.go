// Command console runs the inventory chat command against a simulated world,
// so operators can try saves and loads without a game server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/osse101/unlimited-inventories/internal/bootstrap"
	"github.com/osse101/unlimited-inventories/internal/config"
	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/host/sim"
	"github.com/osse101/unlimited-inventories/internal/inventory"
	"github.com/osse101/unlimited-inventories/internal/logger"
)

func main() {
	_ = godotenv.Load()

	sqlitePath := flag.String("sqlite", ":memory:", "SQLite database file")
	settingsPath := flag.String("settings", "", "plugin settings file (defaults when empty)")
	userID := flag.Int("user", 1, "user id of the simulated player")
	bypass := flag.Bool("bypass", false, "grant the limit bypass permission")
	flag.Parse()

	logger.InitLoggerWithWriter(logger.DefaultConfig(), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *sqlitePath, *settingsPath, *userID, *bypass); err != nil {
		fmt.Fprintf(os.Stderr, "console: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sqlitePath, settingsPath string, userID int, bypass bool) error {
	settings := config.DefaultSettings()
	if settingsPath != "" {
		loaded, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	storage, err := bootstrap.OpenStorage(ctx, &config.Config{
		StorageType: config.StorageTypeSQLite,
		SQLitePath:  sqlitePath,
	})
	if err != nil {
		return err
	}
	defer storage.Close()

	store := inventory.NewService(storage.Repository, settings, nil)
	if err := store.Start(ctx); err != nil {
		return err
	}

	perms := []string{domain.PermissionRoot}
	if bypass {
		perms = append(perms, settings.BypassPermission)
	}
	player := sim.NewPlayer(0, userID, perms...)
	world := sim.NewWorld(false)

	session := newSession(store, world, player, os.Stdout)
	return session.Run(ctx, os.Stdin)
}
