package services

import (
	"context"
	"fmt"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/ports"
	"time"

	"github.com/shopspring/decimal"
)

// Order-level amounts spread over the item attachments.
type UnitAllocation struct {
	OrderAmount decimal.Decimal
	CargoValue  decimal.Decimal
	CODAmount   decimal.Decimal

	// Order currency and carrier account currency.
	FromCurrency string
	ToCurrency   string
	AsOf         time.Time
}

// AllocateUnits builds the per-item attachments of an order.
//
// Cargo value and COD amount are apportioned by each item's unit price
// share of the order amount and converted into the carrier currency.
// Unlike the tariff cost path, a currency mismatch without a converter
// is an error here.
func AllocateUnits(
	ctx context.Context,
	items []domain.Item,
	in UnitAllocation,
	converter ports.CurrencyConverter,
) ([]domain.Unit, error) {
	if converter == nil && in.FromCurrency != in.ToCurrency {
		return nil, fmt.Errorf("allocate units: %s -> %s: %w", in.FromCurrency, in.ToCurrency, domain.ErrMissingCurrencyConverter)
	}

	units := make([]domain.Unit, 0, len(items))
	for _, it := range items {
		share := decimal.Zero
		if in.OrderAmount.IsPositive() {
			share = it.Price.Mul(hundred).Div(in.OrderAmount)
		}

		declared := decimal.Zero
		if in.CargoValue.IsPositive() {
			declared = in.CargoValue.Mul(share).Div(hundred)
		}
		cod := decimal.Zero
		if in.CODAmount.IsPositive() {
			cod = in.CODAmount.Mul(share).Div(hundred)
		}

		if converter != nil {
			var err error
			declared, err = converter.Convert(ctx, declared, in.FromCurrency, in.ToCurrency, in.AsOf)
			if err != nil {
				return nil, fmt.Errorf("allocate units: item %q: declared value: %w", it.Name, err)
			}
			cod, err = converter.Convert(ctx, cod, in.FromCurrency, in.ToCurrency, in.AsOf)
			if err != nil {
				return nil, fmt.Errorf("allocate units: item %q: cod amount: %w", it.Name, err)
			}
		}

		u := domain.Unit{
			Description:   it.Name,
			DeclaredValue: declared.Round(2),
			CODAmount:     cod.Round(2),
			Count:         it.Quantity,
			WithoutVAT:    it.WithoutVAT(),
		}
		if !u.WithoutVAT {
			u.VATPercent = it.VATRate
		}
		units = append(units, u)
	}

	return units, nil
}
