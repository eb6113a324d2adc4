package calc

import (
	"math"
	"testing"
)

func TestForRoundBar(t *testing.T) {
	// 12mm rebar, 6m length.
	est := For(Request{LengthM: 6, DiameterMM: 12})

	want := math.Pi * 0.006 * 0.006 * 6 * SteelDensity
	if math.Abs(est.WeightKg-want) > 1e-9 {
		t.Fatalf("weight = %f, want %f", est.WeightKg, want)
	}
	if est.PricePerKg != DefaultPricePerKg {
		t.Fatalf("price per kg = %f", est.PricePerKg)
	}
	if math.Abs(est.Price-want*DefaultPricePerKg) > 1e-9 {
		t.Fatalf("price = %f", est.Price)
	}
}

func TestForCustomPrice(t *testing.T) {
	est := For(Request{LengthM: 1, DiameterMM: 100, PricePerKg: 120})

	if est.PricePerKg != 120 {
		t.Fatalf("price per kg = %f", est.PricePerKg)
	}
	if math.Abs(est.Price-est.WeightKg*120) > 1e-9 {
		t.Fatalf("price = %f", est.Price)
	}
}

func TestForZeroDimensions(t *testing.T) {
	est := For(Request{})
	if est.WeightKg != 0 || est.Price != 0 {
		t.Fatalf("estimate = %+v", est)
	}
}
