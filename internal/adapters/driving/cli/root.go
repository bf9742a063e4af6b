// Package cli implements the nades command line on top of cobra.
// Commands are thin: they parse arguments, call a driving port and
// print the result as text on a terminal or as JSON otherwise.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driving"
	"github.com/custodia-labs/nades-cli/internal/logger"
	"github.com/custodia-labs/nades-cli/internal/metrics"
)

// skipServices marks commands that never touch the store.
const skipServices = "nades/skip-services"

var version = "dev"

// Settings are resolved from the persistent flags before a command runs.
type Settings struct {
	ConfigPath string
	DBPath     string
	Verbose    bool
}

// Services bundles everything commands need.
type Services struct {
	Map      driving.MapService
	Shortcut driving.ShortcutService
	Log      driving.LogService
	Config   driven.ConfigStore
	Metrics  *metrics.Recorder

	// Close releases the store. May be nil.
	Close func() error
}

// Opener builds Services once flags are parsed.
type Opener func(Settings) (*Services, error)

var (
	opener          Opener
	mapService      driving.MapService
	shortcutService driving.ShortcutService
	logService      driving.LogService
	configStore     driven.ConfigStore
	recorder        *metrics.Recorder
	closeServices   func() error
)

var (
	verbose    bool
	configPath string
	dbPath     string
	jsonOutput bool
)

var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "nades",
	Short: "Keep grenade lineup shortcuts per map",
	Long: `nades stores key-binding shortcuts for grenade lineups, grouped by map.

Data lives in a local SQLite file (app.db by default) that is created and
seeded with the reference maps on first use.`,
	SilenceUsage:      true,
	PersistentPreRunE: openServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configPath, "config", "", "config file (default ~/.nades/config.toml)")
	flags.StringVar(&dbPath, "db", "", "SQLite database path (overrides database.path)")
	flags.BoolVar(&jsonOutput, "json", false, "print JSON even on a terminal")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. open is called at most once, after flag
// parsing, for commands that need the store.
func Execute(ctx context.Context, open Opener) error {
	opener = open
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Error("closing store: %v", err)
		}
		closeServices = nil
	}()

	return rootCmd.ExecuteContext(ctx)
}

func openServices(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if cmd.Annotations[skipServices] == "true" || cmd.Name() == "help" {
		return nil
	}
	if opener == nil || shortcutService != nil {
		return nil
	}

	svc, err := opener(Settings{ConfigPath: configPath, DBPath: dbPath, Verbose: verbose})
	if err != nil {
		return err
	}
	setServices(svc)

	if configStore != nil && configStore.GetBool(driven.ConfigLogVerbose) {
		logger.SetVerbose(true)
	}
	return nil
}

func setServices(svc *Services) {
	mapService = svc.Map
	shortcutService = svc.Shortcut
	logService = svc.Log
	configStore = svc.Config
	recorder = svc.Metrics
	closeServices = svc.Close
}
