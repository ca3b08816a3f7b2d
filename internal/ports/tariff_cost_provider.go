package ports

import (
	"context"
	"parcel-costing-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Parameters of a carrier cost lookup.
// Weight is in kilograms and Volume in cubic meters.
type CostRequest struct {
	PickupLocationID   int64
	DeliveryLocationID int64
	Weight             float64
	Volume             float64
	SelfPickup         bool
	SelfDelivery       bool
	DeclaredValue      decimal.Decimal
}

// Contract for retrieving the carrier's priced service list.
type TariffCostProvider interface {
	// Return the priced tariffs in provider order. A single blocking call.
	GetServiceCost(ctx context.Context, req CostRequest) ([]domain.Tariff, error)
}
