package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibabarta/hotspot/core/model"
)

func results(vals ...float64) []model.WaitTimeResult {
	out := make([]model.WaitTimeResult, len(vals))
	for i, v := range vals {
		out[i] = model.WaitTimeResult{VehicleID: "v", AvgWaitMinutes: v}
	}
	return out
}

func TestAggregateEqualEstimatesSaveNothing(t *testing.T) {
	summary, err := Aggregate(results(12.5), results(12.5), 60)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TimeSavedMinutes)
	assert.Equal(t, 0.0, summary.FleetReductionPercent)
	assert.Equal(t, 1, summary.Vehicles)
}

func TestAggregateKnownValues(t *testing.T) {
	// One vehicle saving 7.5 minutes against 60 minutes of trip time:
	// old total 72.5, new total 65.
	summary, err := Aggregate(results(12.5), results(5), 60)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, summary.TimeSavedMinutes, 1e-9)
	assert.InDelta(t, (1-65.0/72.5)*100, summary.FleetReductionPercent, 1e-9)
	assert.InDelta(t, 12.5, summary.OldAvgWaitMinutes, 1e-9)
	assert.InDelta(t, 5.0, summary.NewAvgWaitMinutes, 1e-9)
}

func TestAggregateNegativeSavingAllowed(t *testing.T) {
	summary, err := Aggregate(results(5), results(12.5), 60)
	require.NoError(t, err)
	assert.InDelta(t, -7.5, summary.TimeSavedMinutes, 1e-9)
	assert.Less(t, summary.FleetReductionPercent, 0.0)
}

func TestAggregateMeansAcrossVehicles(t *testing.T) {
	summary, err := Aggregate(results(10, 20), results(5, 5), 0)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, summary.OldAvgWaitMinutes, 1e-9)
	assert.InDelta(t, 5.0, summary.NewAvgWaitMinutes, 1e-9)
	assert.InDelta(t, 10.0, summary.TimeSavedMinutes, 1e-9)
	// old total 30, new total 10.
	assert.InDelta(t, (1-10.0/30.0)*100, summary.FleetReductionPercent, 1e-9)
}

func TestAggregateEmptyFleet(t *testing.T) {
	_, err := Aggregate(nil, nil, 60)
	assert.True(t, errors.Is(err, ErrEmptyFleet))
}

func TestAggregateZeroTotalTime(t *testing.T) {
	_, err := Aggregate(results(0), results(0), 0)
	assert.True(t, errors.Is(err, ErrEmptyFleet))
}

func TestAggregateMismatchedInputs(t *testing.T) {
	_, err := Aggregate(results(1, 2), results(1), 60)
	assert.True(t, errors.Is(err, ErrEmptyFleet))
}

func TestTotalTripMinutes(t *testing.T) {
	// 30 km at 30 km/h is one hour of driving.
	assert.InDelta(t, 60.0, TotalTripMinutes(30, 30), 1e-9)
	assert.InDelta(t, 2.0, TotalTripMinutes(1, 30), 1e-9)
	assert.Equal(t, 0.0, TotalTripMinutes(10, 0))
}
