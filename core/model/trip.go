package model

import "time"

// TripRecord is one completed taxi trip from the anonymized ledger.
type TripRecord struct {
	VehicleID string
	StartTime time.Time
	EndLat    float64 // end-of-trip latitude in degrees
	EndLon    float64 // end-of-trip longitude in degrees
	Distance  float64 // trip length in km
}

// Hour returns the hour-of-day bucket [0,23] of the trip start.
func (t TripRecord) Hour() int { return t.StartTime.Hour() }

// VehicleTimeline holds one vehicle's trips sorted ascending by start time.
// Trips with equal start times keep their input order.
type VehicleTimeline struct {
	VehicleID string
	Trips     []TripRecord
}

// Transitions returns the number of adjacent trip pairs in the timeline.
// A timeline with fewer than two trips has no transitions to measure.
func (tl VehicleTimeline) Transitions() int {
	if len(tl.Trips) < 2 {
		return 0
	}
	return len(tl.Trips) - 1
}

// TotalDistanceKm sums the trip distances of the timeline.
func (tl VehicleTimeline) TotalDistanceKm() float64 {
	var sum float64
	for _, t := range tl.Trips {
		sum += t.Distance
	}
	return sum
}
