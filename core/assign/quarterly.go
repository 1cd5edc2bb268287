package assign

import "github.com/Abeljo/ECO-SCHEDULER/core/model"

// quarterlyAssigner places exactly one visit per customer, ranked across the
// whole month. It runs last, so it absorbs whatever capacity the higher
// priority classes left over.
type quarterlyAssigner struct{ e *Engine }

func (a quarterlyAssigner) Name() string { return "quarterly" }

func (a quarterlyAssigner) Assign(customers []model.Customer) {
	e := a.e
	for _, c := range customers {
		if _, ok := e.placeRanked(e.workingDays(nil), c, model.VisitQuarterly); !ok {
			e.violate("quarterly", "no admissible day for Quarterly customer %s", c.Name)
		}
	}
}
