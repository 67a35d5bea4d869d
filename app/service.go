// Package app wires configuration, the analysis pipeline, result export
// and metrics sinks into one runnable service.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/alibabarta/hotspot/config"
	"github.com/alibabarta/hotspot/core/analysis"
	"github.com/alibabarta/hotspot/core/demand"
	"github.com/alibabarta/hotspot/core/ledger"
	coremetrics "github.com/alibabarta/hotspot/core/metrics"
	"github.com/alibabarta/hotspot/core/model"
	"github.com/alibabarta/hotspot/infra/logger"
	"github.com/alibabarta/hotspot/infra/metrics"
	"github.com/alibabarta/hotspot/internal/eventbus"
	"github.com/alibabarta/hotspot/pkg/export"
)

// Service runs one analysis pass: load, estimate, aggregate, export.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	bus    *eventbus.Bus
	sink   coremetrics.MetricsSink
	influx *metrics.InfluxSink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	var influx *metrics.InfluxSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			influx = is
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{cfg: cfg, log: logg, bus: eventbus.New(), sink: sink, influx: influx}, nil
}

// Run executes the analysis pipeline and writes the result tables and the
// summary. It blocks until the run finishes or the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			addr := ":" + s.cfg.Metrics.PrometheusPort
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	collectorDone := metrics.CollectEvents(s.bus, s.sink)

	loader := ledger.Loader{TimeLayouts: s.cfg.Ledger.TimeLayouts, Log: logger.New("ledger")}
	fleet, err := loader.LoadFile(s.cfg.Ledger.Path)
	if err != nil {
		return err
	}

	clusters, err := demand.LoadFile(s.cfg.Clusters.Path)
	if err != nil {
		return err
	}
	newIndex := demand.NewIndex
	if s.cfg.Clusters.GeoIndex {
		newIndex = demand.NewGridIndex
	}
	index, err := newIndex(clusters)
	if err != nil {
		return err
	}
	s.log.Infof("indexed %d demand clusters", len(clusters))

	pipeline := analysis.Pipeline{
		Config: s.cfg.Analysis,
		Index:  index,
		Log:    logger.New("pipeline"),
		Bus:    s.bus,
	}
	result, err := pipeline.Run(ctx, fleet)
	// Close the bus so the collector drains before metrics are read or the
	// process exits.
	s.bus.Close()
	<-collectorDone
	if err != nil {
		return err
	}

	if err := writeWaitTimes(s.cfg.Output.BaselinePath, result.Baseline); err != nil {
		return fmt.Errorf("write baseline results: %w", err)
	}
	if err := writeWaitTimes(s.cfg.Output.PolicyPath, result.Policy); err != nil {
		return fmt.Errorf("write policy results: %w", err)
	}
	s.log.Infof("run %s: wrote %s and %s", result.RunID, s.cfg.Output.BaselinePath, s.cfg.Output.PolicyPath)

	return export.WriteSummary(os.Stdout, result.Summary)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}

func writeWaitTimes(path string, results []model.WaitTimeResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteWaitTimes(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
