package metrics

import (
	coremetrics "github.com/alibabarta/hotspot/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records analysis run observations as Prometheus metrics.
type PromSink struct {
	vehicles  prometheus.Counter
	trips     prometheus.Gauge
	waits     *prometheus.HistogramVec
	timeSaved prometheus.Gauge
	reduction prometheus.Gauge
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The scrape server is started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	vehicles := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_vehicles_scored_total",
		Help: "Total number of vehicles scored by both wait-time estimators",
	})
	trips := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "analysis_ledger_trips",
		Help: "Number of trips parsed from the ledger for the current run",
	})
	waits := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_vehicle_wait_minutes",
		Help:    "Per-vehicle average wait time in minutes",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 240},
	}, []string{"estimator"})
	timeSaved := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "analysis_time_saved_minutes",
		Help: "Average wait time saved per vehicle under the relocation policy",
	})
	reduction := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "analysis_fleet_reduction_percent",
		Help: "Estimated fleet size reduction achievable under the relocation policy",
	})

	sink := &PromSink{vehicles: vehicles, trips: trips, waits: waits, timeSaved: timeSaved, reduction: reduction}
	collectors := map[string]prometheus.Collector{
		"vehicles":  vehicles,
		"trips":     trips,
		"waits":     waits,
		"timeSaved": timeSaved,
		"reduction": reduction,
	}
	for name, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch name {
			case "vehicles":
				sink.vehicles = are.ExistingCollector.(prometheus.Counter)
			case "trips":
				sink.trips = are.ExistingCollector.(prometheus.Gauge)
			case "waits":
				sink.waits = are.ExistingCollector.(*prometheus.HistogramVec)
			case "timeSaved":
				sink.timeSaved = are.ExistingCollector.(prometheus.Gauge)
			case "reduction":
				sink.reduction = are.ExistingCollector.(prometheus.Gauge)
			}
		}
	}
	return sink, nil
}

// RecordVehicleWait observes each vehicle's estimates in both histograms.
func (s *PromSink) RecordVehicleWait(recs []coremetrics.VehicleWaitRecord) error {
	for _, r := range recs {
		s.vehicles.Inc()
		s.waits.WithLabelValues("baseline").Observe(r.BaselineMinutes)
		s.waits.WithLabelValues("policy").Observe(r.PolicyMinutes)
	}
	return nil
}

// RecordLedgerLoad sets the trip gauge for the run.
func (s *PromSink) RecordLedgerLoad(ev coremetrics.LedgerLoadEvent) error {
	s.trips.Set(float64(ev.Trips))
	return nil
}

// RecordRunSummary sets the fleet impact gauges.
func (s *PromSink) RecordRunSummary(ev coremetrics.RunSummaryEvent) error {
	s.timeSaved.Set(ev.Summary.TimeSavedMinutes)
	s.reduction.Set(ev.Summary.FleetReductionPercent)
	return nil
}
