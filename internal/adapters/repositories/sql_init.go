package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Initialize the database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id BIGINT PRIMARY KEY,
		country_code TEXT NOT NULL,
		region_code TEXT NOT NULL DEFAULT '',
		city_code TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT ''
	);
	`

	createCurrencyRatesQuery := `
	CREATE TABLE IF NOT EXISTS currency_rates (
        from_currency TEXT NOT NULL,
        to_currency TEXT NOT NULL,
        rate NUMERIC(20, 8) NOT NULL,
        valid_from TIMESTAMPTZ NOT NULL,
        PRIMARY KEY (from_currency, to_currency, valid_from)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_locations_country_city
    ON locations(country_code, city_code);
	`

	statements := []string{
		createLocationsQuery,
		createCurrencyRatesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LocationSeed struct {
	LocationID  int64  `json:"location_id"`
	CountryCode string `json:"country_code"`
	RegionCode  string `json:"region_code"`
	CityCode    string `json:"city_code"`
	Name        string `json:"name"`
}

type RateSeed struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	ValidFrom time.Time       `json:"valid_from"`
}

// ParseLocationSeeds validates raw location seed JSON.
func ParseLocationSeeds(raw []byte) ([]LocationSeed, error) {
	var data []LocationSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	rows := make([]LocationSeed, 0, len(data))
	for i, item := range data {
		if item.LocationID <= 0 {
			return nil, fmt.Errorf("invalid location_id at index %d: %d", i+1, item.LocationID)
		}

		country := strings.ToUpper(strings.TrimSpace(item.CountryCode))
		if country == "" {
			return nil, fmt.Errorf("location at index %d: country_code cannot be empty", i+1)
		}
		item.CountryCode = country
		rows = append(rows, item)
	}
	return rows, nil
}

// ParseRateSeeds validates raw currency rate seed JSON.
func ParseRateSeeds(raw []byte) ([]RateSeed, error) {
	var data []RateSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	for i, r := range data {
		if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
			return nil, fmt.Errorf("rate at index %d: currencies cannot be empty", i+1)
		}
		if !r.Rate.IsPositive() {
			return nil, fmt.Errorf("rate at index %d: rate must be positive, got %s", i+1, r.Rate)
		}
	}
	return data, nil
}

// Populate the locations table from a JSON file.
func SeedLocationsFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	rows, err := ParseLocationSeeds(bytes)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO locations (
		location_id,
		country_code,
		region_code,
		city_code,
		name
	)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (location_id) DO UPDATE
	SET country_code = EXCLUDED.country_code,
		region_code = EXCLUDED.region_code,
		city_code = EXCLUDED.city_code,
		name = EXCLUDED.name;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.ExecContext(ctx, l.LocationID, l.CountryCode, l.RegionCode, l.CityCode, l.Name); err != nil {
			return fmt.Errorf("seed locations: insert location_id=%d: %w", l.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}

// RateWriter stores one exchange rate.
type RateWriter interface {
	PutRate(ctx context.Context, from, to string, rate decimal.Decimal, validFrom time.Time) error
}

// Populate the currency rates from a JSON file through w.
func SeedRatesFromJSON(ctx context.Context, w RateWriter, jsonPath string) error {
	if w == nil {
		return errors.New("seed rates: rate writer is nil")
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed rates: read %q: %w", jsonPath, err)
	}

	rows, err := ParseRateSeeds(bytes)
	if err != nil {
		return fmt.Errorf("seed rates: %w", err)
	}

	for _, r := range rows {
		from := strings.ToUpper(strings.TrimSpace(r.From))
		to := strings.ToUpper(strings.TrimSpace(r.To))
		if err := w.PutRate(ctx, from, to, r.Rate, r.ValidFrom); err != nil {
			return fmt.Errorf("seed rates: %w", err)
		}
	}

	return nil
}
