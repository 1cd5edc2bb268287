package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
)

type jsonReport struct {
	Year    int              `json:"year"`
	Month   time.Month       `json:"month"`
	Days    []*schedule.Day  `json:"days"`
	Summary schedule.Summary `json:"summary"`
}

func writeJSON(w io.Writer, d Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Year: d.Year, Month: d.Month, Days: d.Days, Summary: d.Summary})
}
