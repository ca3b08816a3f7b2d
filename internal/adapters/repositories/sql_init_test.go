package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocationSeeds(t *testing.T) {
	rows, err := ParseLocationSeeds([]byte(`[
		{"location_id": 49694102, "country_code": " ru ", "city_code": "MOW", "name": "Moscow"}
	]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "RU", rows[0].CountryCode)
	assert.Equal(t, int64(49694102), rows[0].LocationID)

	_, err = ParseLocationSeeds([]byte(`[{"location_id": 0, "country_code": "RU"}]`))
	assert.Error(t, err)

	_, err = ParseLocationSeeds([]byte(`[{"location_id": 1, "country_code": ""}]`))
	assert.Error(t, err)
}

func TestParseRateSeeds(t *testing.T) {
	rows, err := ParseRateSeeds([]byte(`[
		{"from": "RUB", "to": "USD", "rate": "0.011", "valid_from": "2026-01-01T00:00:00Z"}
	]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0.011", rows[0].Rate.String())

	_, err = ParseRateSeeds([]byte(`[{"from": "RUB", "to": "USD", "rate": "0", "valid_from": "2026-01-01T00:00:00Z"}]`))
	assert.Error(t, err)
}

type putRateCall struct {
	from, to  string
	rate      decimal.Decimal
	validFrom time.Time
}

type recordingRateWriter struct {
	calls []putRateCall
}

func (w *recordingRateWriter) PutRate(ctx context.Context, from, to string, rate decimal.Decimal, validFrom time.Time) error {
	w.calls = append(w.calls, putRateCall{from: from, to: to, rate: rate, validFrom: validFrom})
	return nil
}

func TestSeedRatesFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"from": " rub", "to": "usd ", "rate": "0.0105", "valid_from": "2026-01-01T00:00:00Z"},
		{"from": "USD", "to": "RUB", "rate": "95.2", "valid_from": "2026-02-01T00:00:00Z"}
	]`), 0o600))

	w := &recordingRateWriter{}
	require.NoError(t, SeedRatesFromJSON(context.Background(), w, path))

	require.Len(t, w.calls, 2)
	assert.Equal(t, "RUB", w.calls[0].from)
	assert.Equal(t, "USD", w.calls[0].to)
	assert.True(t, w.calls[0].rate.Equal(decimal.RequireFromString("0.0105")))
	assert.True(t, w.calls[1].validFrom.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))

	assert.Error(t, SeedRatesFromJSON(context.Background(), w, filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, SeedRatesFromJSON(context.Background(), nil, path))
}
