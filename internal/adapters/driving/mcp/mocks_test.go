package mcp

import (
	"context"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// mockMapService is a mock implementation of driving.MapService.
type mockMapService struct {
	maps []domain.Map
	err  error
}

func (m *mockMapService) List(_ context.Context) ([]domain.Map, error) {
	return m.maps, m.err
}

// shortcutCall captures the arguments of the last ShortcutService call.
type shortcutCall struct {
	method      string
	mapID       int64
	shortcutID  *int64
	description string
	shortcut    string
}

// mockShortcutService is a mock implementation of driving.ShortcutService.
type mockShortcutService struct {
	shortcuts []domain.Shortcut
	id        int64
	err       error
	last      shortcutCall
}

func (m *mockShortcutService) List(_ context.Context, mapID int64) ([]domain.Shortcut, error) {
	m.last = shortcutCall{method: "List", mapID: mapID}
	return m.shortcuts, m.err
}

func (m *mockShortcutService) Save(_ context.Context, mapID int64, description, shortcut string) (int64, error) {
	m.last = shortcutCall{method: "Save", mapID: mapID, description: description, shortcut: shortcut}
	return m.id, m.err
}

func (m *mockShortcutService) Edit(_ context.Context, mapID, shortcutID int64, description, shortcut string) error {
	m.last = shortcutCall{
		method: "Edit", mapID: mapID, shortcutID: &shortcutID,
		description: description, shortcut: shortcut,
	}
	return m.err
}

func (m *mockShortcutService) RemoveReference(_ context.Context, mapID int64, shortcut string) error {
	m.last = shortcutCall{method: "RemoveReference", mapID: mapID, shortcut: shortcut}
	return m.err
}

func (m *mockShortcutService) Delete(_ context.Context, mapID, shortcutID int64) error {
	m.last = shortcutCall{method: "Delete", mapID: mapID, shortcutID: &shortcutID}
	return m.err
}

func (m *mockShortcutService) Assign(
	_ context.Context,
	mapID int64,
	shortcutID *int64,
	description, shortcut string,
) (int64, error) {
	m.last = shortcutCall{
		method: "Assign", mapID: mapID, shortcutID: shortcutID,
		description: description, shortcut: shortcut,
	}
	return m.id, m.err
}

// mockLogService is a mock implementation of driving.LogService.
type mockLogService struct {
	id      string
	err     error
	message string
}

func (m *mockLogService) Log(_ context.Context, message string) (string, error) {
	m.message = message
	return m.id, m.err
}
