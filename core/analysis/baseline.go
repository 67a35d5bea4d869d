// Package analysis implements the wait-time estimators and the fleet-level
// impact aggregation that compares them.
package analysis

import "github.com/alibabarta/hotspot/core/model"

// BaselineAverageWait computes the historical average wait in minutes for
// one vehicle: the sum of consecutive start-time deltas divided by the
// number of transitions. A timeline with fewer than two trips yields 0.
//
// The inter-start gap includes the prior trip's own duration. That is a
// deliberate proxy inherited from the study this tool reproduces, not a
// measure of pure idle time; see PolicySimulator.AverageWait for the
// counterpart formula it is compared against.
func BaselineAverageWait(tl model.VehicleTimeline) float64 {
	n := tl.Transitions()
	if n == 0 {
		return 0
	}
	var totalMinutes float64
	for i := 1; i < len(tl.Trips); i++ {
		totalMinutes += tl.Trips[i].StartTime.Sub(tl.Trips[i-1].StartTime).Minutes()
	}
	return totalMinutes / float64(n)
}
