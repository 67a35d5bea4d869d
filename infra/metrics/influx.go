package metrics

import (
	"context"
	"math"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/alibabarta/hotspot/core/metrics"
	"github.com/alibabarta/hotspot/infra/logger"
)

// InfluxSink writes run KPIs to an InfluxDB instance using the official
// client. Downstream dashboards plot wait-time distributions and fleet
// impact across runs.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	client := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink when the health check fails, so an unreachable database never
// blocks an analysis run.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordVehicleWait writes one point per vehicle with both estimates.
func (s *InfluxSink) RecordVehicleWait(recs []coremetrics.VehicleWaitRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range recs {
		p := write.NewPointWithMeasurement("vehicle_wait").
			AddTag("run_id", r.RunID).
			AddTag("vehicle_id", r.VehicleID).
			AddField("baseline_minutes", round3(r.BaselineMinutes)).
			AddField("policy_minutes", round3(r.PolicyMinutes)).
			SetTime(r.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordLedgerLoad persists the size of the parsed ledger.
func (s *InfluxSink) RecordLedgerLoad(ev coremetrics.LedgerLoadEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("ledger_load").
		AddTag("run_id", ev.RunID).
		AddField("vehicles", ev.Vehicles).
		AddField("trips", ev.Trips).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRunSummary persists the fleet impact of a finished run.
func (s *InfluxSink) RecordRunSummary(ev coremetrics.RunSummaryEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("fleet_impact").
		AddTag("run_id", ev.RunID).
		AddField("vehicles", ev.Summary.Vehicles).
		AddField("old_avg_wait_minutes", round3(ev.Summary.OldAvgWaitMinutes)).
		AddField("new_avg_wait_minutes", round3(ev.Summary.NewAvgWaitMinutes)).
		AddField("time_saved_minutes", round3(ev.Summary.TimeSavedMinutes)).
		AddField("fleet_reduction_percent", round3(ev.Summary.FleetReductionPercent)).
		AddField("duration_seconds", ev.Duration.Seconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
