package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
)

// Ensure ShortcutStore implements the interface.
var _ driven.ShortcutStore = (*ShortcutStore)(nil)

var errUnknownMap = errors.New("FOREIGN KEY constraint failed")

// ShortcutStore is an in-memory implementation of driven.ShortcutStore.
// Shortcuts must reference a map known to the backing MapStore.
type ShortcutStore struct {
	mu        sync.Mutex
	maps      *MapStore
	shortcuts map[int64]domain.Shortcut
	nextID    int64
}

// NewShortcutStore creates an empty shortcut store bound to maps.
func NewShortcutStore(maps *MapStore) *ShortcutStore {
	return &ShortcutStore{
		maps:      maps,
		shortcuts: make(map[int64]domain.Shortcut),
	}
}

// ListByMap returns the shortcuts under mapID ordered by ID.
func (s *ShortcutStore) ListByMap(_ context.Context, mapID int64) ([]domain.Shortcut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Shortcut, 0)
	for _, sc := range s.shortcuts {
		if sc.MapID == mapID {
			result = append(result, sc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Save inserts a shortcut and returns its ID.
func (s *ShortcutStore) Save(_ context.Context, mapID int64, description, shortcut string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(mapID, description, shortcut)
}

// Edit updates the row matching both IDs. No match is not an error.
func (s *ShortcutStore) Edit(_ context.Context, mapID, shortcutID int64, description, shortcut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.update(mapID, shortcutID, description, shortcut)
	return nil
}

// RemoveReference empties the key on every row under mapID that holds it.
func (s *ShortcutStore) RemoveReference(_ context.Context, mapID int64, shortcut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearKey(mapID, shortcut)
	return nil
}

// Delete removes the row matching both IDs.
func (s *ShortcutStore) Delete(_ context.Context, mapID, shortcutID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sc, ok := s.shortcuts[shortcutID]; ok && sc.MapID == mapID {
		delete(s.shortcuts, shortcutID)
	}
	return nil
}

// Assign frees the key under mapID and edits or inserts.
// Nothing changes when shortcutID names no row under mapID.
func (s *ShortcutStore) Assign(
	_ context.Context,
	mapID int64,
	shortcutID *int64,
	description, shortcut string,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shortcutID != nil {
		sc, ok := s.shortcuts[*shortcutID]
		if !ok || sc.MapID != mapID {
			return 0, domain.ErrNotFound
		}
		s.clearKey(mapID, shortcut)
		s.update(mapID, *shortcutID, description, shortcut)
		return *shortcutID, nil
	}

	s.clearKey(mapID, shortcut)
	return s.insert(mapID, description, shortcut)
}

func (s *ShortcutStore) insert(mapID int64, description, shortcut string) (int64, error) {
	if !s.maps.Exists(mapID) {
		return 0, &domain.WriteError{Op: "saving shortcut", Err: errUnknownMap}
	}
	s.nextID++
	s.shortcuts[s.nextID] = domain.Shortcut{
		ID:          s.nextID,
		MapID:       mapID,
		Description: description,
		Shortcut:    shortcut,
	}
	return s.nextID, nil
}

func (s *ShortcutStore) update(mapID, shortcutID int64, description, shortcut string) {
	sc, ok := s.shortcuts[shortcutID]
	if !ok || sc.MapID != mapID {
		return
	}
	sc.Description = description
	sc.Shortcut = shortcut
	s.shortcuts[shortcutID] = sc
}

func (s *ShortcutStore) clearKey(mapID int64, shortcut string) {
	if shortcut == "" {
		return
	}
	for id, sc := range s.shortcuts {
		if sc.MapID == mapID && sc.Shortcut == shortcut {
			sc.Shortcut = ""
			s.shortcuts[id] = sc
		}
	}
}
