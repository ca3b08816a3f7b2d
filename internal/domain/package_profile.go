package domain

import "math"

// Default envelope used when item data is missing or too small.
// Sides are in millimeters, Weight in grams.
type Dimensions struct {
	Width  float64
	Height float64
	Length float64
	Weight float64
}

// Volume in cubic millimeters.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Length
}

// Represents the single aggregated envelope of a shipment.
// Sides are in centimeters and Weight in kilograms. A profile is
// immutable planning data; a new one replaces it when items change.
type PackageProfile struct {
	Width  float64
	Height float64
	Length float64
	Weight float64
}

// Volume in cubic meters, rounded to three decimal places.
func (p PackageProfile) Volume() float64 {
	return roundPlaces(p.Width*p.Height*p.Length/1_000_000, 3)
}

// roundPlaces rounds half away from zero.
func roundPlaces(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
