package driven

import (
	"context"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// ShortcutStore persists shortcuts bound to maps.
// Implementations serialize every call against the underlying store.
type ShortcutStore interface {
	// ListByMap returns every shortcut whose map ID matches, ordered by ID.
	ListByMap(ctx context.Context, mapID int64) ([]domain.Shortcut, error)

	// Save inserts a new shortcut and returns its store-assigned ID.
	// Fails when mapID references no map.
	Save(ctx context.Context, mapID int64, description, shortcut string) (int64, error)

	// Edit updates the shortcut matched by both IDs.
	// Matching nothing is not an error.
	Edit(ctx context.Context, mapID, shortcutID int64, description, shortcut string) error

	// RemoveReference clears the key on any shortcut under mapID that holds it.
	// Matching nothing is not an error.
	RemoveReference(ctx context.Context, mapID int64, shortcut string) error

	// Delete removes the shortcut matched by both IDs together with its media.
	// Matching nothing is not an error.
	Delete(ctx context.Context, mapID, shortcutID int64) error

	// Assign frees the key under mapID, then edits shortcutID or, when it is
	// nil, inserts a new shortcut. Both steps commit or neither does.
	// Returns domain.ErrNotFound when shortcutID matches nothing under mapID.
	Assign(ctx context.Context, mapID int64, shortcutID *int64, description, shortcut string) (int64, error)
}
