package currency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parcel-costing-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SQLRateConverter converts with rates stored in the currency_rates table.
// The newest rate valid at asOf is used; a zero asOf means now.
type SQLRateConverter struct {
	DB *sql.DB
}

func NewSQLRateConverter(db *sql.DB) *SQLRateConverter {
	return &SQLRateConverter{DB: db}
}

func (s *SQLRateConverter) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to string,
	asOf time.Time,
) (_ decimal.Decimal, err error) {
	defer obs.Time(ctx, "currency.sql.Convert")(&err)

	if s.DB == nil {
		return decimal.Zero, errors.New("rate converter: db is nil")
	}

	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return amount, nil
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	q := `
	SELECT rate::text
    FROM currency_rates
    WHERE from_currency = $1
        AND to_currency = $2
        AND valid_from <= $3
    ORDER BY valid_from DESC
    LIMIT 1;
	`

	var raw string
	err = s.DB.QueryRowContext(ctx, q, from, to, asOf).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("convert %s -> %s at %s: %w", from, to, asOf.Format(time.DateOnly), ErrUnknownRate)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s -> %s: query currency_rates table: %w", from, to, err)
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s -> %s: parse rate %q: %w", from, to, raw, err)
	}

	return amount.Mul(rate), nil
}

// PutRate stores a rate valid from the given moment.
func (s *SQLRateConverter) PutRate(ctx context.Context, from, to string, rate decimal.Decimal, validFrom time.Time) error {
	if s.DB == nil {
		return errors.New("rate converter: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO currency_rates (from_currency, to_currency, rate, valid_from)
    VALUES ($1, $2, $3::numeric, $4)
	ON CONFLICT (from_currency, to_currency, valid_from) DO UPDATE
	SET rate = EXCLUDED.rate;
	`, strings.ToUpper(from), strings.ToUpper(to), rate.String(), validFrom)
	if err != nil {
		return fmt.Errorf("put rate %s -> %s: %w", from, to, err)
	}
	return nil
}
