package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// ListMapsInput is the input schema for the list_maps tool.
type ListMapsInput struct{}

// ListMapsOutput is the output schema for the list_maps tool.
type ListMapsOutput struct {
	Maps  []domain.Map `json:"maps"`
	Count int          `json:"count"`
}

// ListShortcutsInput is the input schema for the list_shortcuts tool.
type ListShortcutsInput struct {
	MapID int64 `json:"mapId" jsonschema:"the map whose shortcuts to list"`
}

// ListShortcutsOutput is the output schema for the list_shortcuts tool.
type ListShortcutsOutput struct {
	Shortcuts []domain.Shortcut `json:"shortcuts"`
	Count     int               `json:"count"`
}

// SaveShortcutInput is the input schema for the save_shortcut tool.
type SaveShortcutInput struct {
	MapID       int64  `json:"mapId" jsonschema:"the map to add the shortcut to"`
	Description string `json:"description" jsonschema:"what the shortcut does"`
	Shortcut    string `json:"shortcut,omitempty" jsonschema:"key combination, may be empty"`
}

// EditShortcutInput is the input schema for the edit_shortcut tool.
type EditShortcutInput struct {
	MapID       int64  `json:"mapId" jsonschema:"the map the shortcut belongs to"`
	ShortcutID  int64  `json:"shortcutId" jsonschema:"the shortcut to change"`
	Description string `json:"description" jsonschema:"new description"`
	Shortcut    string `json:"shortcut,omitempty" jsonschema:"new key combination"`
}

// RemoveReferenceInput is the input schema for the remove_shortcut_reference tool.
type RemoveReferenceInput struct {
	MapID    int64  `json:"mapId" jsonschema:"the map to unbind the key on"`
	Shortcut string `json:"shortcut" jsonschema:"key combination to free"`
}

// AssignShortcutInput is the input schema for the assign_shortcut tool.
type AssignShortcutInput struct {
	MapID       int64  `json:"mapId" jsonschema:"the map to bind the key on"`
	ShortcutID  *int64 `json:"shortcutId,omitempty" jsonschema:"existing shortcut to rebind; omit to create one"`
	Description string `json:"description" jsonschema:"what the shortcut does"`
	Shortcut    string `json:"shortcut" jsonschema:"key combination, taken from any other shortcut on the map"`
}

// DeleteShortcutInput is the input schema for the delete_shortcut tool.
type DeleteShortcutInput struct {
	MapID      int64 `json:"mapId" jsonschema:"the map the shortcut belongs to"`
	ShortcutID int64 `json:"shortcutId" jsonschema:"the shortcut to delete"`
}

// LogMessageInput is the input schema for the log_message tool.
type LogMessageInput struct {
	Message string `json:"message" jsonschema:"text to record in the event log"`
}

// IDOutput carries the ID of a created or rebound shortcut.
type IDOutput struct {
	ID int64 `json:"id"`
}

// StatusOutput acknowledges a write with no other result.
type StatusOutput struct {
	Status string `json:"status"`
}

// LogMessageOutput is the output schema for the log_message tool.
type LogMessageOutput struct {
	EventID string `json:"eventId"`
}

var statusOK = StatusOutput{Status: "ok"}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_maps",
		Description: "List all maps",
	}, s.handleListMaps)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_shortcuts",
		Description: "List the shortcuts bound to a map",
	}, s.handleListShortcuts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_shortcut",
		Description: "Create a shortcut on a map",
	}, s.handleSaveShortcut)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edit_shortcut",
		Description: "Change a shortcut's description and key",
	}, s.handleEditShortcut)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_shortcut_reference",
		Description: "Unbind a key combination from every shortcut on a map",
	}, s.handleRemoveReference)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "assign_shortcut",
		Description: "Bind a key to a new or existing shortcut, freeing it elsewhere on the map",
	}, s.handleAssignShortcut)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_shortcut",
		Description: "Delete a shortcut and its media",
	}, s.handleDeleteShortcut)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "log_message",
		Description: "Record a timestamped message in the nades event log",
	}, s.handleLogMessage)
}

func (s *Server) handleListMaps(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListMapsInput,
) (*mcp.CallToolResult, ListMapsOutput, error) {
	maps, err := s.ports.Map.List(ctx)
	if err != nil {
		return nil, ListMapsOutput{}, err
	}
	if maps == nil {
		maps = []domain.Map{}
	}
	return nil, ListMapsOutput{Maps: maps, Count: len(maps)}, nil
}

func (s *Server) handleListShortcuts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListShortcutsInput,
) (*mcp.CallToolResult, ListShortcutsOutput, error) {
	shortcuts, err := s.ports.Shortcut.List(ctx, input.MapID)
	if err != nil {
		return nil, ListShortcutsOutput{}, err
	}
	if shortcuts == nil {
		shortcuts = []domain.Shortcut{}
	}
	return nil, ListShortcutsOutput{Shortcuts: shortcuts, Count: len(shortcuts)}, nil
}

func (s *Server) handleSaveShortcut(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveShortcutInput,
) (*mcp.CallToolResult, IDOutput, error) {
	id, err := s.ports.Shortcut.Save(ctx, input.MapID, input.Description, input.Shortcut)
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: id}, nil
}

func (s *Server) handleEditShortcut(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EditShortcutInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	err := s.ports.Shortcut.Edit(ctx, input.MapID, input.ShortcutID, input.Description, input.Shortcut)
	if err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, statusOK, nil
}

func (s *Server) handleRemoveReference(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveReferenceInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.ports.Shortcut.RemoveReference(ctx, input.MapID, input.Shortcut); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, statusOK, nil
}

func (s *Server) handleAssignShortcut(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AssignShortcutInput,
) (*mcp.CallToolResult, IDOutput, error) {
	id, err := s.ports.Shortcut.Assign(ctx, input.MapID, input.ShortcutID, input.Description, input.Shortcut)
	if err != nil {
		return nil, IDOutput{}, err
	}
	return nil, IDOutput{ID: id}, nil
}

func (s *Server) handleDeleteShortcut(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteShortcutInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.ports.Shortcut.Delete(ctx, input.MapID, input.ShortcutID); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, statusOK, nil
}

func (s *Server) handleLogMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LogMessageInput,
) (*mcp.CallToolResult, LogMessageOutput, error) {
	if s.ports.Log == nil {
		return nil, LogMessageOutput{}, ErrMissingLogService
	}
	id, err := s.ports.Log.Log(ctx, input.Message)
	if err != nil {
		return nil, LogMessageOutput{}, err
	}
	return nil, LogMessageOutput{EventID: id}, nil
}
