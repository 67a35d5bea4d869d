package model

import (
	"math"
	"testing"
	"time"
)

func TestTripRecordHour(t *testing.T) {
	trip := TripRecord{StartTime: time.Date(2024, 3, 1, 17, 59, 0, 0, time.UTC)}
	if trip.Hour() != 17 {
		t.Fatalf("Hour() = %d, want 17", trip.Hour())
	}
}

func TestTimelineTransitions(t *testing.T) {
	cases := []struct {
		trips int
		want  int
	}{{0, 0}, {1, 0}, {2, 1}, {5, 4}}
	for _, c := range cases {
		tl := VehicleTimeline{Trips: make([]TripRecord, c.trips)}
		if got := tl.Transitions(); got != c.want {
			t.Errorf("Transitions() with %d trips = %d, want %d", c.trips, got, c.want)
		}
	}
}

func TestTimelineTotalDistance(t *testing.T) {
	tl := VehicleTimeline{Trips: []TripRecord{{Distance: 1.5}, {Distance: 2.5}}}
	if got := tl.TotalDistanceKm(); got != 4 {
		t.Fatalf("TotalDistanceKm() = %v, want 4", got)
	}
}

func TestDemandClusterValidate(t *testing.T) {
	valid := DemandCluster{Hour: 0, Lat: -90, Lon: 180}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	invalid := []DemandCluster{
		{Hour: -1, Lat: 0, Lon: 0},
		{Hour: 24, Lat: 0, Lon: 0},
		{Hour: 12, Lat: math.NaN(), Lon: 0},
		{Hour: 12, Lat: 0, Lon: math.Inf(-1)},
	}
	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}
