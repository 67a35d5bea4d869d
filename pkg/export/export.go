// Package export writes the pipeline's result tables and summary for the
// downstream plotting and reporting consumers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alibabarta/hotspot/core/model"
)

// WriteWaitTimes writes per-vehicle wait results to w as CSV with the
// `driver_id,avg_wait_time` header the downstream plots expect.
func WriteWaitTimes(w io.Writer, results []model.WaitTimeResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"driver_id", "avg_wait_time"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.VehicleID,
			strconv.FormatFloat(r.AvgWaitMinutes, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary writes the human-readable fleet impact summary, formatted to
// two decimal places.
func WriteSummary(w io.Writer, s model.FleetImpactSummary) error {
	if _, err := fmt.Fprintf(w, "Average time saved per trip: %.2f minutes\n", s.TimeSavedMinutes); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Potential taxi reduction: %.2f%%\n", s.FleetReductionPercent)
	return err
}
