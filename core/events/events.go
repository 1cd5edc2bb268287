// Package events defines the notifications published on the internal event
// bus while a plan is being computed. Observers such as the metrics collector
// subscribe to them; they never influence assignment decisions.
package events

import (
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/model"
)

// PlacementEvent is published when an assigner commits a visit.
type PlacementEvent struct {
	Visit model.Visit
	Date  time.Time
}

// ViolationEvent is published when a rule cannot be satisfied, either during
// assignment or during validation.
type ViolationEvent struct {
	Stage   string
	Message string
}

// RunEvent is published once per run after validation.
type RunEvent struct {
	RunID      string
	Year       int
	Month      time.Month
	Customers  int
	Visits     int
	Violations int
	Passed     bool
}
