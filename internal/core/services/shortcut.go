package services

import (
	"context"
	"time"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driving"
	"github.com/custodia-labs/nades-cli/internal/logger"
	"github.com/custodia-labs/nades-cli/internal/metrics"
)

// Ensure ShortcutService implements the interface.
var _ driving.ShortcutService = (*ShortcutService)(nil)

// ShortcutService manages shortcuts under a map.
type ShortcutService struct {
	store   driven.ShortcutStore
	metrics *metrics.Recorder
}

// NewShortcutService creates a new shortcut service. recorder may be nil.
func NewShortcutService(store driven.ShortcutStore, recorder *metrics.Recorder) *ShortcutService {
	return &ShortcutService{store: store, metrics: recorder}
}

// List returns the shortcuts bound to mapID.
func (s *ShortcutService) List(ctx context.Context, mapID int64) (shortcuts []domain.Shortcut, err error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if mapID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	defer s.observe("list_shortcuts", time.Now(), &err)

	return s.store.ListByMap(ctx, mapID)
}

// Save creates a shortcut. The key may be empty.
func (s *ShortcutService) Save(ctx context.Context, mapID int64, description, shortcut string) (id int64, err error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	if mapID <= 0 {
		return 0, domain.ErrInvalidInput
	}
	defer s.observe("save_shortcut", time.Now(), &err)

	id, err = s.store.Save(ctx, mapID, description, shortcut)
	if err == nil {
		logger.Debug("saved shortcut %d on map %d", id, mapID)
	}
	return id, err
}

// Edit changes the description and key of a shortcut.
func (s *ShortcutService) Edit(ctx context.Context, mapID, shortcutID int64, description, shortcut string) (err error) {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if mapID <= 0 || shortcutID <= 0 {
		return domain.ErrInvalidInput
	}
	defer s.observe("edit_shortcut", time.Now(), &err)

	return s.store.Edit(ctx, mapID, shortcutID, description, shortcut)
}

// RemoveReference frees shortcut under mapID.
func (s *ShortcutService) RemoveReference(ctx context.Context, mapID int64, shortcut string) (err error) {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if mapID <= 0 {
		return domain.ErrInvalidInput
	}
	defer s.observe("remove_shortcut_reference", time.Now(), &err)

	return s.store.RemoveReference(ctx, mapID, shortcut)
}

// Delete removes a shortcut and its media.
func (s *ShortcutService) Delete(ctx context.Context, mapID, shortcutID int64) (err error) {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if mapID <= 0 || shortcutID <= 0 {
		return domain.ErrInvalidInput
	}
	defer s.observe("delete_shortcut", time.Now(), &err)

	return s.store.Delete(ctx, mapID, shortcutID)
}

// Assign binds shortcut to a new or existing shortcut under mapID.
func (s *ShortcutService) Assign(
	ctx context.Context,
	mapID int64,
	shortcutID *int64,
	description, shortcut string,
) (id int64, err error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	if mapID <= 0 || shortcut == "" {
		return 0, domain.ErrInvalidInput
	}
	if shortcutID != nil && *shortcutID <= 0 {
		return 0, domain.ErrInvalidInput
	}
	defer s.observe("assign_shortcut", time.Now(), &err)

	id, err = s.store.Assign(ctx, mapID, shortcutID, description, shortcut)
	if err == nil {
		logger.Debug("assigned %q to shortcut %d on map %d", shortcut, id, mapID)
	}
	return id, err
}

func (s *ShortcutService) observe(operation string, start time.Time, err *error) {
	s.metrics.Observe(operation, start, *err)
	if *err != nil {
		logger.Debug("%s failed: %v", operation, *err)
	}
}
