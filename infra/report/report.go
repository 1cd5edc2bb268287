// Package report renders a committed schedule and its summary as text, JSON
// or CSV. Rendering never fails because of rule violations; a failed run
// still produces a full report.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
)

// Data bundles everything a rendered report needs.
type Data struct {
	Year          int
	Month         time.Month
	Days          []*schedule.Day
	Summary       schedule.Summary
	DailyCapacity int
}

// Render writes the report in the requested format: "text", "json" or "csv".
func Render(w io.Writer, format string, d Data) error {
	switch format {
	case "text":
		return writeText(w, d)
	case "json":
		return writeJSON(w, d)
	case "csv":
		return writeCSV(w, d)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
