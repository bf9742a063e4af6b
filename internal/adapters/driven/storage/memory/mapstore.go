package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
)

// Ensure MapStore implements the interface.
var _ driven.MapStore = (*MapStore)(nil)

// MapStore is an in-memory implementation of driven.MapStore.
type MapStore struct {
	mu   sync.RWMutex
	maps map[int64]domain.Map
}

// NewMapStore creates a map store holding the given maps.
func NewMapStore(maps ...domain.Map) *MapStore {
	s := &MapStore{maps: make(map[int64]domain.Map, len(maps))}
	for _, m := range maps {
		s.maps[m.ID] = m
	}
	return s
}

// List returns all maps ordered by ID.
func (s *MapStore) List(_ context.Context) ([]domain.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Map, 0, len(s.maps))
	for _, m := range s.maps {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Exists reports whether a map with id is present.
func (s *MapStore) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.maps[id]
	return ok
}
