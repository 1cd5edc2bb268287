package metrics

import (
	"errors"

	coremetrics "github.com/Abeljo/ECO-SCHEDULER/core/metrics"
)

// MultiSink fans every record out to all child sinks. Recorder interfaces a
// child does not implement are skipped for that child.
type MultiSink struct {
	sinks []coremetrics.MetricsSink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordRun forwards the run event to every child.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordRun(ev))
	}
	return errors.Join(errs...)
}

// RecordPlacement forwards the placement to children implementing
// PlacementRecorder.
func (m *MultiSink) RecordPlacement(ev coremetrics.PlacementEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if r, ok := s.(coremetrics.PlacementRecorder); ok {
			errs = append(errs, r.RecordPlacement(ev))
		}
	}
	return errors.Join(errs...)
}

// RecordViolation forwards the violation to children implementing
// ViolationRecorder.
func (m *MultiSink) RecordViolation(ev coremetrics.ViolationEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if r, ok := s.(coremetrics.ViolationRecorder); ok {
			errs = append(errs, r.RecordViolation(ev))
		}
	}
	return errors.Join(errs...)
}
