package assign

import "github.com/Abeljo/ECO-SCHEDULER/core/model"

// biMonthlyAssigner places exactly one visit per customer anywhere in the
// month. The class keeps its historical name even though it yields a single
// visit per monthly run.
type biMonthlyAssigner struct{ e *Engine }

func (a biMonthlyAssigner) Name() string { return "bimonthly" }

func (a biMonthlyAssigner) Assign(customers []model.Customer) {
	e := a.e
	for _, c := range customers {
		if _, ok := e.placeRanked(e.workingDays(nil), c, model.VisitBiMonthly); !ok {
			e.violate("bimonthly", "no admissible day for Bi-Monthly customer %s", c.Name)
		}
	}
}
