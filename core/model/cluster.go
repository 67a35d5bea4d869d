package model

import (
	"fmt"
	"math"
)

// DemandCluster is one predicted high-demand center for a given hour-of-day,
// typically the centroid of many historical trip starts.
type DemandCluster struct {
	Hour int
	Lat  float64
	Lon  float64
}

// Validate checks that the hour is within [0,23] and the coordinates are finite.
func (c DemandCluster) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("hour %d out of range [0,23]", c.Hour)
	}
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("non-finite coordinates (%v, %v)", c.Lat, c.Lon)
	}
	return nil
}
