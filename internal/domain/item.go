package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Marker the shop uses for goods sold without VAT.
const VATExempt = "exempt"

// MaxItemQuantity bounds a single order line. Packing cost grows with
// the quantity, so larger lines are refused.
const MaxItemQuantity = 1_000_000

// Box sides of a single unit, millimeters.
type ItemDimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Complete reports whether all three sides are known.
func (d ItemDimensions) Complete() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}

// Represents a single normalized order line handed over for shipping.
// Weight is per unit in grams; Dimensions are per unit in millimeters.
type Item struct {
	Name       string
	Quantity   int
	Price      decimal.Decimal
	VATRate    string
	Weight     float64
	Dimensions ItemDimensions
}

// Validate rejects items that cannot take part in an aggregation.
// Quantities below one or above MaxItemQuantity are refused here instead
// of being guessed at later.
func (i Item) Validate() error {
	if i.Quantity <= 0 || i.Quantity > MaxItemQuantity {
		return fmt.Errorf("item %q: quantity %d: %w", i.Name, i.Quantity, ErrInvalidQuantity)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("item %q: negative price %s", i.Name, i.Price)
	}
	return nil
}

// WithoutVAT reports whether the line carries no VAT rate.
func (i Item) WithoutVAT() bool {
	return i.VATRate == "" || i.VATRate == VATExempt
}
