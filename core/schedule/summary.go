package schedule

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Abeljo/ECO-SCHEDULER/core/model"
)

// Summary aggregates the outcome of a planning run for reporting.
type Summary struct {
	TotalCustomers   int            `json:"total_customers"`
	TotalVisits      int            `json:"total_visits"`
	ByFrequency      map[string]int `json:"visits_by_frequency"`
	ByTeam           map[string]int `json:"visits_by_team"`
	MeanDailyLoad    float64        `json:"mean_daily_load"`
	StdDevDailyLoad  float64        `json:"stddev_daily_load"`
	OverCapacityDays []int          `json:"over_capacity_days,omitempty"`
	Violations       []string       `json:"violations"`
	Passed           bool           `json:"passed"`
}

// BuildSummary scans the committed store and the violation log. Days over the
// daily capacity are listed for report highlighting only; capacity is a soft
// limit at this stage.
func BuildSummary(store *Store, customers []model.Customer, rules Rules, log *ViolationLog) Summary {
	sum := Summary{
		TotalCustomers: len(customers),
		ByFrequency:    make(map[string]int),
		ByTeam:         make(map[string]int),
		Violations:     log.Messages(),
		Passed:         log.Empty(),
	}
	loads := make([]float64, store.Len())
	for n := 1; n <= store.Len(); n++ {
		total := store.TotalVisits(n)
		loads[n-1] = float64(total)
		sum.TotalVisits += total
		if total > rules.DailyCapacity {
			sum.OverCapacityDays = append(sum.OverCapacityDays, n)
		}
	}
	for _, v := range store.AllVisits() {
		sum.ByFrequency[v.Type.Frequency().String()]++
		sum.ByTeam[v.Team]++
	}
	if len(loads) > 0 {
		sum.MeanDailyLoad = stat.Mean(loads, nil)
		if len(loads) > 1 {
			sum.StdDevDailyLoad = stat.StdDev(loads, nil)
		}
	}
	return sum
}
