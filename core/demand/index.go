// Package demand holds hour-bucketed demand-center coordinates and answers
// proximity queries against them. The index is immutable after construction
// and safe for concurrent readers.
package demand

import (
	"errors"
	"fmt"

	"github.com/alibabarta/hotspot/core/geo"
	"github.com/alibabarta/hotspot/core/model"
)

// ErrInvalidCluster indicates an out-of-range hour or non-finite coordinate
// in the demand cluster data. Index construction is aborted.
var ErrInvalidCluster = errors.New("invalid demand cluster")

// Index answers queries over immutable hour-bucketed demand clusters.
type Index interface {
	// ClustersForHour returns the clusters registered for the given
	// hour-of-day. The slice is empty, not nil-checked by callers, when no
	// clusters exist for that hour. Callers must not mutate it.
	ClustersForHour(hour int) []model.DemandCluster

	// AnyWithin reports whether any cluster registered for the hour lies
	// within radiusKm (inclusive) of the given point.
	AnyWithin(lat, lon float64, hour int, radiusKm float64) bool
}

type linearIndex struct {
	byHour [24][]model.DemandCluster
}

// NewIndex builds a linear-scan index over the given clusters.
func NewIndex(clusters []model.DemandCluster) (Index, error) {
	idx := &linearIndex{}
	for i, c := range clusters {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidCluster, i, err)
		}
		idx.byHour[c.Hour] = append(idx.byHour[c.Hour], c)
	}
	return idx, nil
}

func (idx *linearIndex) ClustersForHour(hour int) []model.DemandCluster {
	if hour < 0 || hour > 23 {
		return nil
	}
	return idx.byHour[hour]
}

func (idx *linearIndex) AnyWithin(lat, lon float64, hour int, radiusKm float64) bool {
	return anyWithin(idx.ClustersForHour(hour), lat, lon, radiusKm)
}

func anyWithin(clusters []model.DemandCluster, lat, lon, radiusKm float64) bool {
	for _, c := range clusters {
		if geo.DistanceKm(lat, lon, c.Lat, c.Lon) <= radiusKm {
			return true
		}
	}
	return false
}
