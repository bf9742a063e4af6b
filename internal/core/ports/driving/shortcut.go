package driving

import (
	"context"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// ShortcutService manages key bindings under a map.
type ShortcutService interface {
	// List returns the shortcuts bound to a map.
	List(ctx context.Context, mapID int64) ([]domain.Shortcut, error)

	// Save creates a shortcut and returns its ID.
	Save(ctx context.Context, mapID int64, description, shortcut string) (int64, error)

	// Edit changes the description and key of an existing shortcut.
	// Editing a shortcut that does not exist is a no-op.
	Edit(ctx context.Context, mapID, shortcutID int64, description, shortcut string) error

	// RemoveReference frees a key combination under a map.
	RemoveReference(ctx context.Context, mapID int64, shortcut string) error

	// Delete removes a shortcut and its media.
	Delete(ctx context.Context, mapID, shortcutID int64) error

	// Assign binds a key to a description under a map, taking the key away
	// from any other shortcut on that map. A nil shortcutID creates a new
	// shortcut; otherwise the existing one is rebound.
	Assign(ctx context.Context, mapID int64, shortcutID *int64, description, shortcut string) (int64, error)
}
