// Package calc estimates weight and cost of round steel bar.
package calc

import "math"

// SteelDensity is carbon steel density in kg/m3.
const SteelDensity = 7850

// DefaultPricePerKg is used when the request leaves the price unset.
const DefaultPricePerKg = 85

// Request describes a round bar: length in meters, diameter in millimeters.
// PricePerKg is in rubles; zero or negative falls back to DefaultPricePerKg.
type Request struct {
	LengthM    float64 `json:"length"`
	DiameterMM float64 `json:"diameter"`
	PricePerKg float64 `json:"pricePerKg"`
}

// Estimate is the computed weight (kg) and price (rubles).
type Estimate struct {
	WeightKg   float64 `json:"weight"`
	Price      float64 `json:"price"`
	PricePerKg float64 `json:"pricePerKg"`
}

// For computes the round bar estimate. Volume is a cylinder of the given
// diameter and length, weight follows from steel density.
func For(req Request) Estimate {
	price := req.PricePerKg
	if price <= 0 {
		price = DefaultPricePerKg
	}

	radiusM := req.DiameterMM / 2000
	weight := math.Pi * radiusM * radiusM * req.LengthM * SteelDensity

	return Estimate{
		WeightKg:   weight,
		Price:      weight * price,
		PricePerKg: price,
	}
}
