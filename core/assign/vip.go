package assign

import "github.com/Abeljo/ECO-SCHEDULER/core/model"

// vipAssigner places a visit every VIPIntervalDays from the 1st of the month
// through month end, rest days included. A missed day is logged and never
// retried; the cadence does not shift forward.
type vipAssigner struct{ e *Engine }

func (a vipAssigner) Name() string { return "vip" }

func (a vipAssigner) Assign(customers []model.Customer) {
	e := a.e
	for _, c := range customers {
		for d := 1; d <= e.store.Len(); d += e.rules.VIPIntervalDays {
			if e.checker.CanPlace(d, c.Team, c, true) {
				e.commit(d, c, model.VisitVIP)
				continue
			}
			e.violate("vip", "VIP visit for %s could not be placed on %s", c.Name, e.date(d))
		}
	}
}
