package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nades-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read maps
and manage shortcuts.

By default, the server communicates over stdio using JSON-RPC.

Use --port (or mcp.port in the config file) to serve streamable HTTP
instead. Prometheus metrics are then available at /metrics.

Changes to log.verbose in the config file take effect without a restart.

Examples:
  # Stdio mode (default)
  nades mcp serve

  # HTTP mode
  nades mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if !cmd.Flags().Changed("port") && configStore != nil {
		port = configStore.GetInt(driven.ConfigMCPPort)
	}

	ports := &mcp.Ports{
		Map:      mapService,
		Shortcut: shortcutService,
		Log:      logService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}
	server.SetMetrics(recorder)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	watchConfig(ctx)

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// watchConfig re-applies log.verbose whenever the config file changes.
func watchConfig(ctx context.Context) {
	if configStore == nil {
		return
	}

	go func() {
		err := configStore.Watch(ctx, func() {
			logger.SetVerbose(verbose || configStore.GetBool(driven.ConfigLogVerbose))
			logger.Info("reloaded %s", configStore.Path())
		})
		if err != nil {
			logger.Warn("config reload disabled: %v", err)
		}
	}()
}
