package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInfeasibleShipment       = errors.New("sender or receiver location is not resolved")
	ErrNoTariffAvailable        = errors.New("no allowed tariff available")
	ErrTariffNotFound           = errors.New("tariff not found")
	ErrMissingCurrencyConverter = errors.New("currency converter is not defined")
	ErrInvalidQuantity          = errors.New("quantity must be between 1 and 1000000")
)

// ProviderError wraps a failure of the carrier cost service.
// The underlying error is kept as is and is never retried.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("tariff cost provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
