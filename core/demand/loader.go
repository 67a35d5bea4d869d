package demand

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alibabarta/hotspot/core/model"
)

// Column names expected in the demand cluster CSV header. The optional
// weekday and cluster-label columns emitted by the clustering job are
// ignored.
const (
	colHour     = "hour"
	colStartLat = "StartLat"
	colStartLon = "StartLon"
)

// LoadFile reads demand clusters from the CSV at path.
func LoadFile(path string) ([]model.DemandCluster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open demand clusters: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses demand cluster rows. Unparseable or out-of-range values abort
// the load with ErrInvalidCluster.
func Load(r io.Reader) ([]model.DemandCluster, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read demand cluster header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, n := range []string{colHour, colStartLat, colStartLon} {
		if _, ok := cols[n]; !ok {
			return nil, fmt.Errorf("demand clusters: missing column %q", n)
		}
	}

	var clusters []model.DemandCluster
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidCluster, row, err)
		}
		hour, err := strconv.Atoi(rec[cols[colHour]])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: hour: %v", ErrInvalidCluster, row, err)
		}
		lat, err := strconv.ParseFloat(rec[cols[colStartLat]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: latitude: %v", ErrInvalidCluster, row, err)
		}
		lon, err := strconv.ParseFloat(rec[cols[colStartLon]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: longitude: %v", ErrInvalidCluster, row, err)
		}
		c := model.DemandCluster{Hour: hour, Lat: lat, Lon: lon}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidCluster, row, err)
		}
		clusters = append(clusters, c)
	}
	return clusters, nil
}
