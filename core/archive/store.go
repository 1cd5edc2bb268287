// Package archive persists completed planning runs for later inspection and
// for the read-only HTTP API.
package archive

import (
	"context"
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/model"
	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
)

// RunRecord captures one completed planning run.
type RunRecord struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	Year       int              `json:"year"`
	Month      time.Month       `json:"month"`
	Seed       int64            `json:"seed"`
	Summary    schedule.Summary `json:"summary"`
	Visits     []model.Visit    `json:"visits"`
	Violations []string         `json:"violations"`
}

// Query defines filters for retrieving archived runs. Zero fields match
// everything.
type Query struct {
	Start time.Time
	End   time.Time
	Year  int
	Month time.Month
}

func (q Query) matches(r RunRecord) bool {
	if !q.Start.IsZero() && r.CreatedAt.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.CreatedAt.After(q.End) {
		return false
	}
	if q.Year != 0 && r.Year != q.Year {
		return false
	}
	if q.Month != 0 && r.Month != q.Month {
		return false
	}
	return true
}

// RunStore persists run records and supports querying past runs.
type RunStore interface {
	Append(ctx context.Context, rec RunRecord) error
	Query(ctx context.Context, q Query) ([]RunRecord, error)
	Close() error
}
