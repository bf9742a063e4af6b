package sqlite

import (
	"context"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
)

// mapStore implements driven.MapStore.
type mapStore struct {
	store *Store
}

var _ driven.MapStore = (*mapStore)(nil)

// List returns all maps ordered by ID.
func (s *mapStore) List(ctx context.Context) ([]domain.Map, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, image_path
		FROM maps
		ORDER BY id
	`)
	if err != nil {
		return nil, &domain.QueryError{Op: "querying maps", Err: err}
	}
	defer rows.Close()

	return collectRows(rows, "maps", scanMap)
}
