package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Payer type and payment system chosen for an order.
type PaymentMethod struct {
	PayerType string
	PaySystem string
}

// Empty reports whether no payment information was given.
func (p PaymentMethod) Empty() bool {
	return p.PayerType == "" && p.PaySystem == ""
}

// Represents the data needed to price one parcel: endpoints, service
// flags, contents and payment. Profile is derived from Items when they
// are set through SetItems.
type Shipment struct {
	Sender        *Location
	Receiver      *Location
	SelfPickup    bool
	SelfDelivery  bool
	DeclaredValue bool
	Items         []Item
	Price         decimal.Decimal
	Payment       PaymentMethod
	Profile       PackageProfile
}

// IsFeasible reports whether both endpoints are resolved.
func (s *Shipment) IsFeasible() bool {
	return s != nil && s.Sender != nil && s.Receiver != nil
}

// SetItems validates items and stores them together with the aggregated
// profile produced by aggregate.
func (s *Shipment) SetItems(
	items []Item,
	price decimal.Decimal,
	aggregate func([]Item) PackageProfile,
) error {
	for idx, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("set items: index %d: %w", idx, err)
		}
	}

	s.Items = items
	s.Price = price
	s.Profile = aggregate(items)
	return nil
}
