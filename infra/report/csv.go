package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
)

// writeCSV renders one row per committed visit.
func writeCSV(w io.Writer, d Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "working", "team", "customer", "type", "location"}); err != nil {
		return err
	}
	for _, day := range d.Days {
		teams := make([]string, 0, len(day.Jobs))
		for team := range day.Jobs {
			teams = append(teams, team)
		}
		sort.Strings(teams)
		for _, team := range teams {
			for _, v := range day.Jobs[team] {
				row := []string{
					day.Date.Format("2006-01-02"),
					strconv.FormatBool(day.Working),
					team,
					v.Customer,
					v.Type.String(),
					v.Location,
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
