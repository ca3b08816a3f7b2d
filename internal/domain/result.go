package domain

import "github.com/shopspring/decimal"

// Outcome of a tariff calculation. CommissionApplied is the COD surcharge
// already included in Cost, kept for billing audits. It stays in the
// tariff's source currency, named by CommissionCurrency, while Cost and
// Currency may be converted.
type CalculationResult struct {
	TariffCode        TariffCode
	TariffName        string
	Cost              decimal.Decimal
	Currency          string
	CommissionApplied  decimal.Decimal
	CommissionCurrency string
}

// Per-item fiscal attachment sent with an order.
type Unit struct {
	Description   string
	DeclaredValue decimal.Decimal
	CODAmount     decimal.Decimal
	Count         int
	WithoutVAT    bool
	VATPercent    string
}
