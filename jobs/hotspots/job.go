// Package hotspots implements the hourly demand clustering batch job: trip
// starts are bucketed by hour-of-day and partitioned with k-means, and the
// resulting centroids become the demand clusters consumed by the analysis
// pipeline. The pipeline itself depends only on the cluster CSV contract,
// never on this package.
package hotspots

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/alibabarta/hotspot/core/ledger"
	"github.com/alibabarta/hotspot/core/logger"
)

// Config holds the clustering job tunables.
type Config struct {
	// ClustersPerHour is the k handed to k-means for each hour bucket,
	// clamped to the bucket size.
	ClustersPerHour int `json:"clusters_per_hour"`

	MaxIterations int `json:"max_iterations"`

	// Seed makes centroid initialization reproducible.
	Seed int64 `json:"seed"`
}

// SetDefaults fills unset fields with the study defaults.
func (c *Config) SetDefaults() {
	if c.ClustersPerHour <= 0 {
		c.ClustersPerHour = 84
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 50
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
}

// Column names read from the trip CSV. StartDateTime supplies the hour
// bucket; extra columns are ignored.
const (
	colStartTime = "StartDateTime"
	colStartLat  = "StartLat"
	colStartLon  = "StartLon"
)

// Job clusters trip starts per hour of day.
type Job struct {
	Config Config
	// TimeLayouts are tried in order when parsing StartDateTime.
	TimeLayouts []string
	Log         logger.Logger
}

// RunFile reads trip starts from inPath and writes the centroid CSV to
// outPath.
func (j Job) RunFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open trips: %w", err)
	}
	defer in.Close()
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create clusters: %w", err)
	}
	defer out.Close()
	return j.Run(in, out)
}

// Run reads trip starts from r, clusters each hour bucket and writes rows
// of `hour,StartLat,StartLon` to w, ordered by hour. Empty hours produce no
// rows.
func (j Job) Run(r io.Reader, w io.Writer) error {
	log := j.Log
	if log == nil {
		log = logger.Nop{}
	}
	buckets, err := j.readBuckets(r)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(j.Config.Seed))
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hour", "StartLat", "StartLon"}); err != nil {
		return err
	}
	var total int
	for hour := 0; hour < 24; hour++ {
		points := buckets[hour]
		if len(points) == 0 {
			continue
		}
		centers := KMeans(points, j.Config.ClustersPerHour, j.Config.MaxIterations, rng)
		for _, c := range centers {
			rec := []string{
				strconv.Itoa(hour),
				strconv.FormatFloat(c.Lat, 'f', -1, 64),
				strconv.FormatFloat(c.Lon, 'f', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		total += len(centers)
		log.Debugf("hour %d: %d trip starts -> %d clusters", hour, len(points), len(centers))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	log.Infof("wrote %d demand clusters", total)
	return nil
}

func (j Job) readBuckets(r io.Reader) (map[int][]Point, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read trips header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, n := range []string{colStartTime, colStartLat, colStartLon} {
		if _, ok := cols[n]; !ok {
			return nil, fmt.Errorf("trips: missing column %q", n)
		}
	}

	buckets := make(map[int][]Point)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trips: row %d: %w", row, err)
		}
		ts, err := ledger.ParseTime(rec[cols[colStartTime]], j.TimeLayouts)
		if err != nil {
			return nil, fmt.Errorf("trips: row %d: start time: %w", row, err)
		}
		lat, err := strconv.ParseFloat(rec[cols[colStartLat]], 64)
		if err != nil {
			return nil, fmt.Errorf("trips: row %d: latitude: %w", row, err)
		}
		lon, err := strconv.ParseFloat(rec[cols[colStartLon]], 64)
		if err != nil {
			return nil, fmt.Errorf("trips: row %d: longitude: %w", row, err)
		}
		buckets[ts.Hour()] = append(buckets[ts.Hour()], Point{Lat: lat, Lon: lon})
	}
	return buckets, nil
}
