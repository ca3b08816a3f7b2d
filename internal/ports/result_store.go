package ports

import (
	"context"
	"parcel-costing-service/internal/domain"
)

// Opt-in memo of the most recent calculation, last write wins.
// It exists for introspection only and is never read to produce a result.
type ResultStore interface {
	Save(ctx context.Context, result domain.CalculationResult) error
	// Return the last saved result; ok is false when nothing was saved.
	Last(ctx context.Context) (result domain.CalculationResult, ok bool, err error)
}
