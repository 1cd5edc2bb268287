package assign

import (
	"sort"

	"github.com/Abeljo/ECO-SCHEDULER/core/model"
)

// workingDays returns the 1-based day numbers of working days, keeping only
// those satisfying keep when it is non-nil.
func (e *Engine) workingDays(keep func(day int) bool) []int {
	var days []int
	for n := 1; n <= e.store.Len(); n++ {
		if !e.store.Day(n).Working {
			continue
		}
		if keep != nil && !keep(n) {
			continue
		}
		days = append(days, n)
	}
	return days
}

// rankDays orders candidate days for a customer: lower team load wins, then
// days where the team already visits the customer's location, then lower
// total load. The stable sort keeps ascending date as the final tie-break so
// ranking stays reproducible.
func (e *Engine) rankDays(days []int, c model.Customer) []int {
	ranked := append([]int(nil), days...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		la, lb := e.store.TeamLoad(a, c.Team), e.store.TeamLoad(b, c.Team)
		if la != lb {
			return la < lb
		}
		if c.Location != "" {
			sa := e.store.TeamAtLocation(a, c.Team, c.Location)
			sb := e.store.TeamAtLocation(b, c.Team, c.Location)
			if sa != sb {
				return sa
			}
		}
		return e.store.TotalVisits(a) < e.store.TotalVisits(b)
	})
	return ranked
}

// placeRanked walks the ranked candidates and commits at the first admissible
// day. The checker runs against the live store on every candidate, so earlier
// commits in the same walk are always taken into account.
func (e *Engine) placeRanked(days []int, c model.Customer, t model.VisitType) (int, bool) {
	for _, d := range e.rankDays(days, c) {
		if e.checker.CanPlace(d, c.Team, c, false) {
			e.commit(d, c, t)
			return d, true
		}
	}
	return 0, false
}
