package analysis

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/alibabarta/hotspot/core/model"
)

// ErrEmptyFleet indicates that the fleet-level ratios are undefined: no
// vehicles, or a zero total operating time.
var ErrEmptyFleet = errors.New("empty fleet")

// Aggregate combines both estimators' per-vehicle results into fleet-level
// metrics. totalTripMinutes is the fleet travel time, already converted to
// minutes (trip distance over the assumed average speed). baseline and
// policy must cover the same vehicles in the same order.
func Aggregate(baseline, policy []model.WaitTimeResult, totalTripMinutes float64) (model.FleetImpactSummary, error) {
	if len(baseline) == 0 || len(baseline) != len(policy) {
		return model.FleetImpactSummary{}, ErrEmptyFleet
	}

	oldWaits := waitValues(baseline)
	newWaits := waitValues(policy)

	oldAvg := stat.Mean(oldWaits, nil)
	newAvg := stat.Mean(newWaits, nil)

	oldTotal := totalTripMinutes + floats.Sum(oldWaits)
	newTotal := totalTripMinutes + floats.Sum(newWaits)
	if oldTotal == 0 {
		return model.FleetImpactSummary{}, ErrEmptyFleet
	}

	return model.FleetImpactSummary{
		Vehicles:              len(baseline),
		TotalTripMinutes:      totalTripMinutes,
		OldAvgWaitMinutes:     oldAvg,
		NewAvgWaitMinutes:     newAvg,
		TimeSavedMinutes:      oldAvg - newAvg,
		FleetReductionPercent: (1 - newTotal/oldTotal) * 100,
	}, nil
}

// TotalTripMinutes converts the fleet's total trip distance to travel time
// in minutes at the given average speed.
func TotalTripMinutes(totalDistanceKm, avgSpeedKmh float64) float64 {
	if avgSpeedKmh <= 0 {
		return 0
	}
	return totalDistanceKm / avgSpeedKmh * 60
}

func waitValues(results []model.WaitTimeResult) []float64 {
	vals := make([]float64, len(results))
	for i, r := range results {
		vals[i] = r.AvgWaitMinutes
	}
	return vals
}
