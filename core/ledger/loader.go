// Package ledger parses raw per-trip records into normalized, time-ordered
// timelines per vehicle.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/alibabarta/hotspot/core/logger"
	"github.com/alibabarta/hotspot/core/model"
)

// ErrMalformedRecord indicates an unparseable timestamp, coordinate or
// distance in the trip ledger. The whole load is aborted so that bad input
// surfaces instead of silently biasing the fleet aggregate.
var ErrMalformedRecord = errors.New("malformed trip record")

// Column names expected in the trip ledger CSV header. Any additional
// columns are ignored.
const (
	colVehicleID = "anonymized_vehicle_id"
	colStartTime = "StartDateTime"
	colEndLat    = "EndLat"
	colEndLon    = "EndLon"
	colDistance  = "Distance"
)

// DefaultTimeLayouts are tried in order when parsing StartDateTime values.
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006 15:04:05",
}

// ParseTime parses a timestamp using the given layouts in order, falling
// back to DefaultTimeLayouts when none are provided.
func ParseTime(value string, layouts []string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	var lastErr error
	for _, layout := range layouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Fleet maps a vehicle id to its timeline.
type Fleet map[string]model.VehicleTimeline

// VehicleIDs returns the vehicle ids sorted lexicographically.
func (f Fleet) VehicleIDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalDistanceKm sums the trip distances across the whole fleet.
func (f Fleet) TotalDistanceKm() float64 {
	var sum float64
	for _, tl := range f {
		sum += tl.TotalDistanceKm()
	}
	return sum
}

// Trips returns the total number of trips across the fleet.
func (f Fleet) Trips() int {
	var n int
	for _, tl := range f {
		n += len(tl.Trips)
	}
	return n
}

// Loader reads a trip ledger CSV into per-vehicle timelines.
type Loader struct {
	// TimeLayouts are tried in order when parsing StartDateTime.
	// DefaultTimeLayouts is used when empty.
	TimeLayouts []string
	Log         logger.Logger
}

// LoadFile opens path and delegates to Load.
func (l Loader) LoadFile(path string) (Fleet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trip ledger: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load parses the trip ledger, groups rows by vehicle id and stable-sorts
// each group ascending by start time. Rows with equal start times keep
// their input relative order.
func (l Loader) Load(r io.Reader) (Fleet, error) {
	log := l.Log
	if log == nil {
		log = logger.Nop{}
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read trip ledger header: %w", err)
	}
	cols, err := columnIndexes(header, colVehicleID, colStartTime, colEndLat, colEndLon, colDistance)
	if err != nil {
		return nil, fmt.Errorf("trip ledger: %w", err)
	}

	fleet := Fleet{}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRecord, row, err)
		}
		trip, err := l.parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRecord, row, err)
		}
		tl := fleet[trip.VehicleID]
		tl.VehicleID = trip.VehicleID
		tl.Trips = append(tl.Trips, trip)
		fleet[trip.VehicleID] = tl
	}

	for id, tl := range fleet {
		sort.SliceStable(tl.Trips, func(i, j int) bool {
			return tl.Trips[i].StartTime.Before(tl.Trips[j].StartTime)
		})
		fleet[id] = tl
	}
	log.Infof("loaded %d trips for %d vehicles", fleet.Trips(), len(fleet))
	return fleet, nil
}

func (l Loader) parseRow(rec []string, cols map[string]int) (model.TripRecord, error) {
	id := rec[cols[colVehicleID]]
	ts, err := ParseTime(rec[cols[colStartTime]], l.TimeLayouts)
	if err != nil {
		return model.TripRecord{}, fmt.Errorf("vehicle %q: start time %q: %v", id, rec[cols[colStartTime]], err)
	}
	lat, err := parseCoordinate(rec[cols[colEndLat]])
	if err != nil {
		return model.TripRecord{}, fmt.Errorf("vehicle %q: end latitude: %v", id, err)
	}
	lon, err := parseCoordinate(rec[cols[colEndLon]])
	if err != nil {
		return model.TripRecord{}, fmt.Errorf("vehicle %q: end longitude: %v", id, err)
	}
	dist, err := strconv.ParseFloat(rec[cols[colDistance]], 64)
	if err != nil {
		return model.TripRecord{}, fmt.Errorf("vehicle %q: distance: %v", id, err)
	}
	if math.IsNaN(dist) || math.IsInf(dist, 0) || dist < 0 {
		return model.TripRecord{}, fmt.Errorf("vehicle %q: distance %v must be non-negative", id, dist)
	}
	return model.TripRecord{VehicleID: id, StartTime: ts, EndLat: lat, EndLon: lon, Distance: dist}, nil
}

func parseCoordinate(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite coordinate %v", v)
	}
	return v, nil
}

func columnIndexes(header []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for i, h := range header {
		cols[h] = i
	}
	out := make(map[string]int, len(names))
	for _, n := range names {
		i, ok := cols[n]
		if !ok {
			return nil, fmt.Errorf("missing column %q", n)
		}
		out[n] = i
	}
	return out, nil
}
