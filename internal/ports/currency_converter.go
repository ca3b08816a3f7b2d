package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Contract for converting money between currencies.
type CurrencyConverter interface {
	// Convert amount from one currency to another. A zero asOf means "latest rate".
	Convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf time.Time) (decimal.Decimal, error)
}
