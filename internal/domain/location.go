package domain

// Immutable reference to a carrier location (city level).
// Locations are resolved by an external collaborator; the costing
// core only passes the ID through and checks the country for COD.
type Location struct {
	ID          int64
	CountryCode string
	RegionCode  string
	CityCode    string
	Name        string
}
