package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// writeText renders one block per day with team routes, then the summary.
// Days whose total exceeds the daily capacity are flagged.
func writeText(w io.Writer, d Data) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Visit schedule for %s %d\n", d.Month, d.Year)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 40))
	for _, day := range d.Days {
		total := 0
		for _, visits := range day.Jobs {
			total += len(visits)
		}
		marker := ""
		if !day.Working {
			marker = " (rest day)"
		}
		overloaded := ""
		if total > d.DailyCapacity {
			overloaded = fmt.Sprintf("  ! over capacity (%d/%d)", total, d.DailyCapacity)
		}
		fmt.Fprintf(&b, "%s%s  %d visits%s\n", day.Date.Format("Mon 2006-01-02"), marker, total, overloaded)
		teams := make([]string, 0, len(day.Jobs))
		for team, visits := range day.Jobs {
			if len(visits) > 0 {
				teams = append(teams, team)
			}
		}
		sort.Strings(teams)
		for _, team := range teams {
			fmt.Fprintf(&b, "  %s:", team)
			for _, v := range day.Jobs[team] {
				fmt.Fprintf(&b, " %s[%s]", v.Customer, v.Type)
			}
			fmt.Fprintln(&b)
		}
	}

	s := d.Summary
	fmt.Fprintf(&b, "\nSummary\n%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(&b, "Customers:        %d\n", s.TotalCustomers)
	fmt.Fprintf(&b, "Visits:           %d\n", s.TotalVisits)
	fmt.Fprintf(&b, "Daily load:       %.2f mean, %.2f stddev\n", s.MeanDailyLoad, s.StdDevDailyLoad)
	for _, freq := range sortedKeys(s.ByFrequency) {
		fmt.Fprintf(&b, "  %-12s %d\n", freq+":", s.ByFrequency[freq])
	}
	fmt.Fprintf(&b, "Visits by team:\n")
	for _, team := range sortedKeys(s.ByTeam) {
		fmt.Fprintf(&b, "  %-12s %d\n", team+":", s.ByTeam[team])
	}
	if len(s.Violations) > 0 {
		fmt.Fprintf(&b, "Violations (%d):\n", len(s.Violations))
		for _, msg := range s.Violations {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}
	check := "PASSED"
	if !s.Passed {
		check = "FAILED"
	}
	fmt.Fprintf(&b, "Validation Check: %s\n", check)
	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
