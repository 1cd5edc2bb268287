// Package validate re-derives the scheduling invariants from the committed
// store, independently of what the assigners logged.
package validate

import (
	"github.com/Abeljo/ECO-SCHEDULER/core/model"
	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
)

// Validator scans the final store and the customer list once, after every
// assigner has finished, and appends any mismatch to the shared violation
// log. The daily capacity limit is deliberately not re-checked here; it is a
// soft limit surfaced through report highlighting.
type Validator struct {
	Store     *schedule.Store
	Rules     schedule.Rules
	Customers []model.Customer
	Log       *schedule.ViolationLog
}

// Validate runs every invariant check and reports true when the violation
// log is empty afterwards. Entries appended during the assignment phase count
// against the result too, so a run that failed any placement never passes.
func (v *Validator) Validate() bool {
	vipTeams := model.VIPTeams(v.Customers)
	v.checkRestDays(vipTeams)
	v.checkVIPDayLogistics(vipTeams)
	v.checkVIPDedication()
	v.checkOccurrenceCounts()
	v.checkVIPCadence()
	return v.Log.Empty()
}

// checkRestDays verifies that a non-working day hosts visits only for VIP
// teams.
func (v *Validator) checkRestDays(vipTeams map[string]bool) {
	for n := 1; n <= v.Store.Len(); n++ {
		d := v.Store.Day(n)
		if d.Working {
			continue
		}
		for _, team := range v.Store.ActiveTeams(n) {
			if !vipTeams[team] {
				v.Log.Addf("validate", "non-working day %s has %d visits for non-VIP team %s",
					d.Date.Format("2006-01-02"), v.Store.TeamLoad(n, team), team)
			}
		}
	}
}

// checkVIPDayLogistics verifies that a day hosting a VIP visit keeps the
// number of distinct non-VIP teams within the logistics cap.
func (v *Validator) checkVIPDayLogistics(vipTeams map[string]bool) {
	for n := 1; n <= v.Store.Len(); n++ {
		if !v.Store.HasVIP(n) {
			continue
		}
		nonVIP := 0
		for _, team := range v.Store.ActiveTeams(n) {
			if !vipTeams[team] {
				nonVIP++
			}
		}
		if nonVIP > v.Rules.VIPDayTeamCap {
			v.Log.Addf("validate", "day %s hosts a VIP visit with %d non-VIP teams active, cap is %d",
				v.Store.Day(n).Date.Format("2006-01-02"), nonVIP, v.Rules.VIPDayTeamCap)
		}
	}
}

// checkVIPDedication verifies that a team performing a VIP visit on a day
// performs nothing else that day.
func (v *Validator) checkVIPDedication() {
	for n := 1; n <= v.Store.Len(); n++ {
		d := v.Store.Day(n)
		for team, visits := range d.Jobs {
			vip, other := 0, 0
			for _, visit := range visits {
				if visit.IsVIP() {
					vip++
				} else {
					other++
				}
			}
			if vip > 0 && other > 0 {
				v.Log.Addf("validate", "team %s mixes a VIP visit with %d other visits on %s",
					team, other, d.Date.Format("2006-01-02"))
			}
		}
	}
}

// checkOccurrenceCounts verifies per-class visit counts: Monthly customers
// get exactly two visits within the gap window, Bi-Monthly and Quarterly
// customers exactly one.
func (v *Validator) checkOccurrenceCounts() {
	for _, c := range v.Customers {
		visits := v.Store.VisitsFor(c.Name)
		switch c.Frequency {
		case model.FrequencyMonthly:
			if len(visits) != 2 {
				v.Log.Addf("validate", "Monthly customer %s has %d visits, expected 2", c.Name, len(visits))
				continue
			}
			gap := visits[1].Day - visits[0].Day
			if gap < v.Rules.MonthlyGapMin || gap > v.Rules.MonthlyGapMax {
				v.Log.Addf("validate", "Monthly customer %s: gap is %d days, expected between %d and %d",
					c.Name, gap, v.Rules.MonthlyGapMin, v.Rules.MonthlyGapMax)
			}
		case model.FrequencyBiMonthly:
			if len(visits) != 1 {
				v.Log.Addf("validate", "Bi-Monthly customer %s has %d visits, expected 1", c.Name, len(visits))
			}
		case model.FrequencyQuarterly:
			if len(visits) != 1 {
				v.Log.Addf("validate", "Quarterly customer %s has %d visits, expected 1", c.Name, len(visits))
			}
		}
	}
}

// checkVIPCadence verifies that every VIP customer is visited on each
// expected day of the cadence, rest days included.
func (v *Validator) checkVIPCadence() {
	for _, c := range v.Customers {
		if !c.IsVIP() {
			continue
		}
		visited := make(map[int]bool)
		for _, visit := range v.Store.VisitsFor(c.Name) {
			if visit.IsVIP() {
				visited[visit.Day] = true
			}
		}
		for d := 1; d <= v.Store.Len(); d += v.Rules.VIPIntervalDays {
			if !visited[d] {
				v.Log.Addf("validate", "VIP customer %s has no visit on %s",
					c.Name, v.Store.Day(d).Date.Format("2006-01-02"))
			}
		}
	}
}
