package mcp

import (
	"github.com/custodia-labs/nades-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Map lists the seeded maps.
	Map driving.MapService

	// Shortcut manages shortcuts under a map.
	Shortcut driving.ShortcutService

	// Log records messages from the client. Optional.
	Log driving.LogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Map == nil {
		return ErrMissingMapService
	}
	if p.Shortcut == nil {
		return ErrMissingShortcutService
	}
	return nil
}
