// Package metrics defines the sink interfaces used to record analysis run
// observations. Concrete sinks live under infra/metrics.
package metrics

import (
	"time"

	"github.com/alibabarta/hotspot/core/model"
)

// VehicleWaitRecord is one vehicle's wait estimate under both policies.
type VehicleWaitRecord struct {
	RunID           string
	VehicleID       string
	BaselineMinutes float64
	PolicyMinutes   float64
	Time            time.Time
}

// MetricsSink records per-vehicle wait estimates.
type MetricsSink interface {
	RecordVehicleWait(recs []VehicleWaitRecord) error
}

// LedgerLoadEvent captures the size of a parsed trip ledger.
type LedgerLoadEvent struct {
	RunID    string
	Vehicles int
	Trips    int
	Time     time.Time
}

// LedgerLoadRecorder records ledger load events.
type LedgerLoadRecorder interface {
	RecordLedgerLoad(ev LedgerLoadEvent) error
}

// RunSummaryEvent captures the fleet impact of a finished run.
type RunSummaryEvent struct {
	RunID    string
	Summary  model.FleetImpactSummary
	Duration time.Duration
	Time     time.Time
}

// RunSummaryRecorder records fleet impact summaries.
type RunSummaryRecorder interface {
	RecordRunSummary(ev RunSummaryEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordVehicleWait([]VehicleWaitRecord) error { return nil }
func (NopSink) RecordLedgerLoad(LedgerLoadEvent) error      { return nil }
func (NopSink) RecordRunSummary(RunSummaryEvent) error      { return nil }
