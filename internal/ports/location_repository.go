package ports

import (
	"context"
	"parcel-costing-service/internal/domain"
)

// Port: a boundary for resolving carrier locations.
type LocationRepository interface {
	// Return the location with the given id, or nil when it is unknown.
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
}
