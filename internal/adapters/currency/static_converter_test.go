package currency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticConverter(t *testing.T) {
	c := NewStaticConverter().SetRate("RUB", "USD", decimal.NewFromInt(2))
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to string
		amount   string
		want     string
	}{
		{"direct rate", "RUB", "USD", "100", "200"},
		{"inverse rate", "usd", "rub", "200", "100"},
		{"same currency", "EUR", "eur", "42.5", "42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(ctx, decimal.RequireFromString(tt.amount), tt.from, tt.to, time.Time{})
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestStaticConverterUnknownPair(t *testing.T) {
	_, err := NewStaticConverter().Convert(context.Background(), decimal.NewFromInt(1), "RUB", "KZT", time.Time{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRate))
}
