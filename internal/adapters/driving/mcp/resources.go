package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for nades resources.
	uriScheme = "nades://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "maps",
		Name:        "maps",
		Description: "All maps with their image paths",
		MIMEType:    "application/json",
	}, s.handleMapsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "maps/{mapId}/shortcuts",
		Name:        "map-shortcuts",
		Description: "Shortcuts bound to a specific map",
		MIMEType:    "application/json",
	}, s.handleShortcutsResource)
}

// handleMapsResource returns every map as JSON.
func (s *Server) handleMapsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	maps, err := s.ports.Map.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing maps: %w", err)
	}
	return jsonResource(req.Params.URI, maps)
}

// handleShortcutsResource returns the shortcuts of one map as JSON.
func (s *Server) handleShortcutsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	mapID, ok := extractMapID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	shortcuts, err := s.ports.Shortcut.List(ctx, mapID)
	if err != nil {
		return nil, fmt.Errorf("listing shortcuts: %w", err)
	}
	return jsonResource(req.Params.URI, shortcuts)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMapID extracts the map ID from a URI like nades://maps/{mapId}/shortcuts.
func extractMapID(uri string) (int64, bool) {
	const prefix = uriScheme + "maps/"
	const suffix = "/shortcuts"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return 0, false
	}

	raw := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
