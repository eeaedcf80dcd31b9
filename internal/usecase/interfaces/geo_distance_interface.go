package interfaces

import (
	"context"

	"towdispatch/internal/domain/entities"
)

// IGeoDistanceProvider abstracts route distance lookups. Only the quote path
// consumes it; the lifecycle use case itself never performs network I/O.
type IGeoDistanceProvider interface {
	DistanceKm(ctx context.Context, from entities.Location, via []entities.Location, to entities.Location) (float64, error)
}
