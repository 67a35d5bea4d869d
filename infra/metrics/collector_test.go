package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alibabarta/hotspot/core/events"
	"github.com/alibabarta/hotspot/core/model"
	"github.com/alibabarta/hotspot/internal/eventbus"
)

func TestCollectEventsRecordsUntilBusCloses(t *testing.T) {
	bus := eventbus.New()
	sink := &recordingSink{}
	done := CollectEvents(bus, sink)

	bus.Publish(events.LedgerLoaded{RunID: "r", Vehicles: 2, Trips: 5})
	bus.Publish(events.VehicleScored{RunID: "r", VehicleID: "a", BaselineMinutes: 12.5, PolicyMinutes: 5})
	bus.Publish(events.VehicleScored{RunID: "r", VehicleID: "b", BaselineMinutes: 40, PolicyMinutes: 40})
	bus.Publish(events.RunCompleted{RunID: "r", Summary: model.FleetImpactSummary{Vehicles: 2}})
	bus.Close()
	<-done

	assert.Equal(t, 1, sink.loads)
	assert.Equal(t, 2, sink.waits)
	assert.Equal(t, 1, sink.summaries)
}

func TestCollectEventsNilBus(t *testing.T) {
	done := CollectEvents(nil, &recordingSink{})
	<-done
}
