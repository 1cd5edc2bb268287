package assign

import "github.com/Abeljo/ECO-SCHEDULER/core/model"

// monthlyAssigner places two visits per customer, MonthlyGapMin to
// MonthlyGapMax days apart. Customers are shuffled first so that several
// customers sharing a team do not all cluster on the same early day; the
// shuffle draws from the engine's seeded source.
type monthlyAssigner struct{ e *Engine }

func (a monthlyAssigner) Name() string { return "monthly" }

func (a monthlyAssigner) Assign(customers []model.Customer) {
	e := a.e
	shuffled := append([]model.Customer(nil), customers...)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for _, c := range shuffled {
		first := e.workingDays(func(d int) bool { return d <= e.rules.MonthlyFirstBy })
		d1, ok := e.placeRanked(first, c, model.VisitMonthly1)
		if !ok {
			e.violate("monthly", "no admissible day for first Monthly visit of %s", c.Name)
			// Without a first visit there is no anchor for the second.
			continue
		}
		second := e.workingDays(func(d int) bool {
			gap := d - d1
			return gap >= e.rules.MonthlyGapMin && gap <= e.rules.MonthlyGapMax
		})
		if _, ok := e.placeRanked(second, c, model.VisitMonthly2); !ok {
			e.violate("monthly", "no admissible day %d-%d days after %s's first visit on %s",
				e.rules.MonthlyGapMin, e.rules.MonthlyGapMax, c.Name, e.date(d1))
		}
	}
}
