// Command nades manages grenade lineup shortcuts per map.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/nades-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/nades-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/nades-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/core/services"
	"github.com/custodia-labs/nades-cli/internal/logger"
	"github.com/custodia-labs/nades-cli/internal/metrics"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, openServices)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// openServices loads config, opens the store and builds the services.
// The database path resolves as --db, then database.path, then app.db.
func openServices(settings cli.Settings) (*cli.Services, error) {
	config, err := file.NewConfigStore(settings.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	path := settings.DBPath
	if path == "" {
		path = config.GetString(driven.ConfigDatabasePath)
	}

	store, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened %s (config %s)", store.Path(), config.Path())

	recorder := metrics.NewRecorder()

	return &cli.Services{
		Map:      services.NewMapService(store.MapStore(), recorder),
		Shortcut: services.NewShortcutService(store.ShortcutStore(), recorder),
		Log:      services.NewLogService(),
		Config:   config,
		Metrics:  recorder,
		Close:    store.Close,
	}, nil
}
