package metrics

import (
	"time"

	"github.com/alibabarta/hotspot/core/events"
	coremetrics "github.com/alibabarta/hotspot/core/metrics"
	"github.com/alibabarta/hotspot/internal/eventbus"
)

// CollectEvents subscribes to the event bus and records metrics for
// pipeline progress events until the bus closes. It is meant to run in its
// own goroutine; the returned channel is closed once the subscription
// drains, giving callers a join point before reading final metric values.
func CollectEvents(bus eventbus.EventBus, sink coremetrics.MetricsSink) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		for ev := range sub {
			switch e := ev.(type) {
			case events.LedgerLoaded:
				if r, ok := sink.(coremetrics.LedgerLoadRecorder); ok {
					_ = r.RecordLedgerLoad(coremetrics.LedgerLoadEvent{
						RunID:    e.RunID,
						Vehicles: e.Vehicles,
						Trips:    e.Trips,
						Time:     time.Now(),
					})
				}
			case events.VehicleScored:
				_ = sink.RecordVehicleWait([]coremetrics.VehicleWaitRecord{{
					RunID:           e.RunID,
					VehicleID:       e.VehicleID,
					BaselineMinutes: e.BaselineMinutes,
					PolicyMinutes:   e.PolicyMinutes,
					Time:            time.Now(),
				}})
			case events.RunCompleted:
				if r, ok := sink.(coremetrics.RunSummaryRecorder); ok {
					_ = r.RecordRunSummary(coremetrics.RunSummaryEvent{
						RunID:    e.RunID,
						Summary:  e.Summary,
						Duration: e.Duration,
						Time:     time.Now(),
					})
				}
			}
		}
	}()
	return done
}
