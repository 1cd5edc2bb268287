package schedule

import (
	"fmt"
	"time"
)

// Rules defines the placement constraints shared by the admissibility checker,
// the assigners and the validator. Values are loaded from configuration; the
// zero value is completed by SetDefaults.
type Rules struct {
	// RestDay names the weekly non-working weekday, e.g. "Sunday".
	RestDay string `json:"rest_day"`
	// DailyCapacity caps the total number of visits on any single day.
	DailyCapacity int `json:"daily_capacity"`
	// TeamCap limits the number of distinct teams active on a normal day.
	TeamCap int `json:"team_cap"`
	// VIPDayTeamCap limits the number of distinct non-VIP teams active on a
	// day that hosts a VIP visit. One team stays reserved for the VIP route.
	VIPDayTeamCap int `json:"vip_day_team_cap"`
	// VIPIntervalDays is the cadence of VIP visits starting from the 1st.
	VIPIntervalDays int `json:"vip_interval_days"`
	// MonthlyGapMin and MonthlyGapMax bound the distance in days between the
	// two visits of a Monthly customer, inclusive.
	MonthlyGapMin int `json:"monthly_gap_min"`
	MonthlyGapMax int `json:"monthly_gap_max"`
	// MonthlyFirstBy is the latest day of month eligible for a Monthly
	// customer's first visit.
	MonthlyFirstBy int `json:"monthly_first_by"`
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// SetDefaults applies the standard rule set.
func (r *Rules) SetDefaults() {
	if r.RestDay == "" {
		r.RestDay = "Sunday"
	}
	if r.DailyCapacity == 0 {
		r.DailyCapacity = 10
	}
	if r.TeamCap == 0 {
		r.TeamCap = 3
	}
	if r.VIPDayTeamCap == 0 {
		r.VIPDayTeamCap = 2
	}
	if r.VIPIntervalDays == 0 {
		r.VIPIntervalDays = 2
	}
	if r.MonthlyGapMin == 0 {
		r.MonthlyGapMin = 12
	}
	if r.MonthlyGapMax == 0 {
		r.MonthlyGapMax = 16
	}
	if r.MonthlyFirstBy == 0 {
		r.MonthlyFirstBy = 15
	}
}

// Validate checks the rule set for internal consistency.
func (r Rules) Validate() error {
	if _, ok := weekdays[r.RestDay]; !ok {
		return fmt.Errorf("unknown rest day %q", r.RestDay)
	}
	if r.DailyCapacity <= 0 {
		return fmt.Errorf("daily_capacity must be positive")
	}
	if r.TeamCap <= 0 || r.VIPDayTeamCap <= 0 {
		return fmt.Errorf("team caps must be positive")
	}
	if r.VIPIntervalDays <= 0 {
		return fmt.Errorf("vip_interval_days must be positive")
	}
	if r.MonthlyGapMin > r.MonthlyGapMax {
		return fmt.Errorf("monthly gap window [%d,%d] is empty", r.MonthlyGapMin, r.MonthlyGapMax)
	}
	if r.MonthlyFirstBy <= 0 {
		return fmt.Errorf("monthly_first_by must be positive")
	}
	return nil
}

// RestWeekday resolves the configured rest day name. Validate must have
// accepted the rules first.
func (r Rules) RestWeekday() time.Weekday {
	return weekdays[r.RestDay]
}
