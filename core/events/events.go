// Package events defines the progress events published on the event bus
// while an analysis run executes.
package events

import (
	"time"

	"github.com/alibabarta/hotspot/core/model"
)

// LedgerLoaded is published once the trip ledger has been parsed.
type LedgerLoaded struct {
	RunID    string
	Vehicles int
	Trips    int
}

// VehicleScored is published after both estimators finish one vehicle.
type VehicleScored struct {
	RunID           string
	VehicleID       string
	BaselineMinutes float64
	PolicyMinutes   float64
}

// RunCompleted carries the fleet summary of a finished run.
type RunCompleted struct {
	RunID    string
	Summary  model.FleetImpactSummary
	Duration time.Duration
}
