package driving

import (
	"context"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// MapService exposes the seeded maps.
type MapService interface {
	// List returns all maps in insertion order.
	List(ctx context.Context) ([]domain.Map, error)
}
