package demand

import (
	"github.com/mmcloughlin/geohash"

	"github.com/alibabarta/hotspot/core/model"
)

// gridPrecision is the geohash precision used for the cell grid. At
// precision 4 a cell spans roughly 39x20 km at the equator, so a cell plus
// its eight neighbors covers any search disk of radius up to
// maxGridRadiusKm at usable latitudes.
const gridPrecision = 4

// maxGridRadiusKm bounds the radius for which the neighbor-ring lookup is
// guaranteed to see every candidate. Larger radii fall back to scanning the
// whole hour bucket.
const maxGridRadiusKm = 2.0

type cellKey struct {
	hour int
	cell string
}

// gridIndex buckets clusters per hour and geohash cell. Queries inspect the
// query point's cell and its eight neighbors, preserving the exact
// "any candidate within radius" semantics of the linear scan.
type gridIndex struct {
	linear linearIndex
	cells  map[cellKey][]model.DemandCluster
}

// NewGridIndex builds a geohash-grid index over the given clusters.
func NewGridIndex(clusters []model.DemandCluster) (Index, error) {
	base, err := NewIndex(clusters)
	if err != nil {
		return nil, err
	}
	idx := &gridIndex{
		linear: *base.(*linearIndex),
		cells:  make(map[cellKey][]model.DemandCluster),
	}
	for _, c := range clusters {
		key := cellKey{hour: c.Hour, cell: geohash.EncodeWithPrecision(c.Lat, c.Lon, gridPrecision)}
		idx.cells[key] = append(idx.cells[key], c)
	}
	return idx, nil
}

func (idx *gridIndex) ClustersForHour(hour int) []model.DemandCluster {
	return idx.linear.ClustersForHour(hour)
}

func (idx *gridIndex) AnyWithin(lat, lon float64, hour int, radiusKm float64) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	if radiusKm > maxGridRadiusKm {
		return idx.linear.AnyWithin(lat, lon, hour, radiusKm)
	}
	cell := geohash.EncodeWithPrecision(lat, lon, gridPrecision)
	if anyWithin(idx.cells[cellKey{hour: hour, cell: cell}], lat, lon, radiusKm) {
		return true
	}
	for _, n := range geohash.Neighbors(cell) {
		if anyWithin(idx.cells[cellKey{hour: hour, cell: n}], lat, lon, radiusKm) {
			return true
		}
	}
	return false
}
