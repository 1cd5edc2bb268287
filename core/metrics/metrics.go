// Package metrics defines the observability contracts for planning runs.
// Sinks implementing the optional recorder interfaces receive the matching
// events; everything else is silently skipped.
package metrics

import "time"

// PlacementEvent describes one committed visit.
type PlacementEvent struct {
	Customer  string
	Team      string
	Frequency string
	VisitType string
	Date      time.Time
}

// PlacementRecorder records committed visits.
type PlacementRecorder interface {
	RecordPlacement(ev PlacementEvent) error
}

// ViolationEvent describes one rule the engine could not satisfy.
type ViolationEvent struct {
	Stage   string
	Message string
	Time    time.Time
}

// ViolationRecorder records rule violations.
type ViolationRecorder interface {
	RecordViolation(ev ViolationEvent) error
}

// RunEvent summarizes one completed planning run.
type RunEvent struct {
	RunID      string
	Year       int
	Month      time.Month
	Customers  int
	Visits     int
	Violations int
	Passed     bool
	DayLoads   []float64
	Time       time.Time
}

// MetricsSink records run-level results. Concrete sinks usually also
// implement PlacementRecorder and ViolationRecorder.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error             { return nil }
func (NopSink) RecordPlacement(PlacementEvent) error { return nil }
func (NopSink) RecordViolation(ViolationEvent) error { return nil }
