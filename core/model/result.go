package model

// WaitTimeResult is one vehicle's average wait in minutes under one estimator.
type WaitTimeResult struct {
	VehicleID      string
	AvgWaitMinutes float64
}

// FleetImpactSummary combines both estimators' outputs into fleet-level metrics.
type FleetImpactSummary struct {
	Vehicles              int
	TotalTripMinutes      float64 // fleet travel time at the assumed average speed
	OldAvgWaitMinutes     float64 // mean of baseline per-vehicle averages
	NewAvgWaitMinutes     float64 // mean of policy per-vehicle averages
	TimeSavedMinutes      float64 // may be negative if the policy performs worse
	FleetReductionPercent float64
}
