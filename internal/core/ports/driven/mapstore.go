package driven

import (
	"context"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// MapStore reads the seeded reference maps.
type MapStore interface {
	// List returns every map ordered by ID.
	List(ctx context.Context) ([]domain.Map, error)
}
