package currency

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownRate = errors.New("no exchange rate")

// StaticConverter converts with a fixed in-memory rate table.
// A rate registered for A->B also serves B->A through its inverse.
type StaticConverter struct {
	rates map[string]decimal.Decimal
}

func NewStaticConverter() *StaticConverter {
	return &StaticConverter{rates: make(map[string]decimal.Decimal)}
}

// SetRate registers how many units of to one unit of from buys.
func (c *StaticConverter) SetRate(from, to string, rate decimal.Decimal) *StaticConverter {
	c.rates[pairKey(from, to)] = rate
	return c
}

func (c *StaticConverter) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to string,
	asOf time.Time,
) (decimal.Decimal, error) {
	if strings.EqualFold(from, to) {
		return amount, nil
	}

	if r, ok := c.rates[pairKey(from, to)]; ok {
		return amount.Mul(r), nil
	}
	if r, ok := c.rates[pairKey(to, from)]; ok && !r.IsZero() {
		return amount.Div(r), nil
	}

	return decimal.Zero, fmt.Errorf("convert %s -> %s: %w", from, to, ErrUnknownRate)
}

func pairKey(from, to string) string {
	return strings.ToUpper(from) + "|" + strings.ToUpper(to)
}
