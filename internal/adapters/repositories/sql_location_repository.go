package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/platform/obs"
)

// SQL-backed implementation of the LocationRepository port.
type SQLLocationRepository struct{ DB *sql.DB }

func NewSQLLocationRepository(db *sql.DB) *SQLLocationRepository {
	return &SQLLocationRepository{DB: db}
}

// Return the location with the given id, or nil when it is not stored.
func (s *SQLLocationRepository) GetLocation(ctx context.Context, id int64) (_ *domain.Location, err error) {
	defer obs.Time(ctx, "locations.GetLocation")(&err)

	if s.DB == nil {
		return nil, errors.New("sql location repository: DB is nil")
	}

	query := `
	SELECT
		location_id,
		country_code,
		region_code,
		city_code,
		name
	FROM locations
	WHERE location_id = $1;
	`

	var l domain.Location
	err = s.DB.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.CountryCode, &l.RegionCode, &l.CityCode, &l.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location %d: query locations table: %w", id, err)
	}

	return &l, nil
}
