// Package mcp provides an MCP (Model Context Protocol) server adapter for nades.
// It lets AI assistants read maps and manage shortcuts through the same
// services the CLI uses.
package mcp

import "errors"

// ErrMissingMapService is returned when the map service is not provided.
var ErrMissingMapService = errors.New("mcp: map service is required")

// ErrMissingShortcutService is returned when the shortcut service is not provided.
var ErrMissingShortcutService = errors.New("mcp: shortcut service is required")

// ErrMissingLogService is returned by log_message when no log service is set.
var ErrMissingLogService = errors.New("mcp: log service not configured")
