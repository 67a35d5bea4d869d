package geo

import (
	"math"
	"testing"
)

func TestDistanceKmIdenticalPoints(t *testing.T) {
	coords := [][2]float64{{0, 0}, {25.2048, 55.2708}, {-33.8688, 151.2093}, {89.9, -179.9}}
	for _, c := range coords {
		if d := DistanceKm(c[0], c[1], c[0], c[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same) = %v, want exactly 0", c[0], c[1], d)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	d1 := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	d2 := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	if math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKmKnownValue(t *testing.T) {
	// Paris to London, roughly 343.5 km great-circle.
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(d-343.56) > 1 {
		t.Fatalf("Paris-London distance = %v km, want ~343.56", d)
	}
}

func TestDistanceKmShortRange(t *testing.T) {
	// 0.001 degrees of latitude is about 111 meters.
	d := DistanceKm(25.0, 55.0, 25.001, 55.0)
	if math.Abs(d-0.11132) > 0.001 {
		t.Fatalf("short-range distance = %v km, want ~0.111", d)
	}
}

func TestDistanceKmNonNegative(t *testing.T) {
	if d := DistanceKm(-10, 20, 30, -40); d < 0 {
		t.Fatalf("distance must be non-negative, got %v", d)
	}
}
