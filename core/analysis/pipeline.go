package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alibabarta/hotspot/core/demand"
	"github.com/alibabarta/hotspot/core/events"
	"github.com/alibabarta/hotspot/core/ledger"
	"github.com/alibabarta/hotspot/core/logger"
	"github.com/alibabarta/hotspot/core/model"
	"github.com/alibabarta/hotspot/internal/eventbus"
)

// Result holds the per-vehicle tables and the fleet summary of one run.
// Tables are sorted by vehicle id so output is deterministic regardless of
// input row order or worker scheduling.
type Result struct {
	RunID    string
	Baseline []model.WaitTimeResult
	Policy   []model.WaitTimeResult
	Summary  model.FleetImpactSummary
}

// Pipeline runs both wait-time estimators over a loaded fleet and
// aggregates the outcome. Per-vehicle computation has no cross-vehicle
// dependency, so it is spread across a pool of workers sharing the
// read-only demand index.
type Pipeline struct {
	Config Config
	Index  demand.Index
	Log    logger.Logger
	Bus    eventbus.EventBus // optional progress events
}

// Run executes the pipeline over the fleet. It returns ErrEmptyFleet for a
// fleet with no vehicles and the context error if the run is aborted.
func (p Pipeline) Run(ctx context.Context, fleet ledger.Fleet) (*Result, error) {
	log := p.Log
	if log == nil {
		log = logger.Nop{}
	}
	if len(fleet) == 0 {
		return nil, ErrEmptyFleet
	}

	started := time.Now()
	runID := uuid.NewString()
	ids := fleet.VehicleIDs()
	p.publish(events.LedgerLoaded{RunID: runID, Vehicles: len(ids), Trips: fleet.Trips()})

	sim := PolicySimulator{
		Index:               p.Index,
		HotspotRadiusKm:     p.Config.HotspotRadiusKm,
		RedirectWaitMinutes: p.Config.RedirectWaitMinutes,
	}

	workers := p.Config.Workers
	if workers <= 0 || workers > len(ids) {
		workers = len(ids)
	}
	log.Debugf("run %s: scoring %d vehicles with %d workers", runID, len(ids), workers)

	baseline := make([]model.WaitTimeResult, len(ids))
	policy := make([]model.WaitTimeResult, len(ids))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				tl := fleet[ids[i]]
				base := BaselineAverageWait(tl)
				pol := sim.AverageWait(tl)
				baseline[i] = model.WaitTimeResult{VehicleID: ids[i], AvgWaitMinutes: base}
				policy[i] = model.WaitTimeResult{VehicleID: ids[i], AvgWaitMinutes: pol}
				p.publish(events.VehicleScored{
					RunID:           runID,
					VehicleID:       ids[i],
					BaselineMinutes: base,
					PolicyMinutes:   pol,
				})
			}
		}()
	}

feed:
	for i := range ids {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	totalTripMinutes := TotalTripMinutes(fleet.TotalDistanceKm(), p.Config.AverageSpeedKmh)
	summary, err := Aggregate(baseline, policy, totalTripMinutes)
	if err != nil {
		return nil, err
	}

	p.publish(events.RunCompleted{RunID: runID, Summary: summary, Duration: time.Since(started)})
	log.Infof("run %s: %d vehicles, %.2f min saved, %.2f%% fleet reduction",
		runID, summary.Vehicles, summary.TimeSavedMinutes, summary.FleetReductionPercent)

	return &Result{RunID: runID, Baseline: baseline, Policy: policy, Summary: summary}, nil
}

func (p Pipeline) publish(e eventbus.Event) {
	if p.Bus != nil {
		p.Bus.Publish(e)
	}
}
