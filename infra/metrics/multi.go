package metrics

import coremetrics "github.com/alibabarta/hotspot/core/metrics"

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordVehicleWait forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordVehicleWait(recs []coremetrics.VehicleWaitRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordVehicleWait(recs); err != nil {
			return err
		}
	}
	return nil
}

// RecordLedgerLoad forwards ledger load events to sinks that support them.
func (m *MultiSink) RecordLedgerLoad(ev coremetrics.LedgerLoadEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.LedgerLoadRecorder); ok {
			if err := rec.RecordLedgerLoad(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRunSummary forwards run summaries to sinks that support them.
func (m *MultiSink) RecordRunSummary(ev coremetrics.RunSummaryEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.RunSummaryRecorder); ok {
			if err := rec.RecordRunSummary(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
