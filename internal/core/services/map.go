package services

import (
	"context"
	"time"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driving"
	"github.com/custodia-labs/nades-cli/internal/metrics"
)

// Ensure MapService implements the interface.
var _ driving.MapService = (*MapService)(nil)

// MapService lists the seeded maps.
type MapService struct {
	store   driven.MapStore
	metrics *metrics.Recorder
}

// NewMapService creates a new map service. recorder may be nil.
func NewMapService(store driven.MapStore, recorder *metrics.Recorder) *MapService {
	return &MapService{store: store, metrics: recorder}
}

// List returns all maps ordered by ID.
func (s *MapService) List(ctx context.Context) (maps []domain.Map, err error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	start := time.Now()
	defer func() { s.metrics.Observe("list_maps", start, err) }()
	return s.store.List(ctx)
}
