package schedule

import "github.com/Abeljo/ECO-SCHEDULER/core/model"

// Checker decides whether a visit may be committed to a day. It reads the
// store and never mutates it; callers must re-evaluate it on every candidate
// immediately before committing.
type Checker struct {
	Store    *Store
	Rules    Rules
	VIPTeams map[string]bool
}

// CanPlace applies the placement rules in order: rest day, VIP-day logistics
// or the normal team cap, then the daily capacity limit. Only VIP placements
// pass allowRestDay=true.
func (c *Checker) CanPlace(day int, team string, cust model.Customer, allowRestDay bool) bool {
	d := c.Store.Day(day)
	if d == nil {
		return false
	}
	if !d.Working && !allowRestDay {
		return false
	}
	if c.Store.HasVIP(day) {
		// A VIP team is dedicated to its VIP route for the day.
		if c.Store.TeamHasVIP(day, team) && !cust.IsVIP() {
			return false
		}
		if !c.VIPTeams[team] {
			active := false
			nonVIP := 0
			for _, t := range c.Store.ActiveTeams(day) {
				if c.VIPTeams[t] {
					continue
				}
				nonVIP++
				if t == team {
					active = true
				}
			}
			if !active && nonVIP >= c.Rules.VIPDayTeamCap {
				return false
			}
		}
	} else {
		active := false
		teams := c.Store.ActiveTeams(day)
		for _, t := range teams {
			if t == team {
				active = true
				break
			}
		}
		if !active && len(teams) >= c.Rules.TeamCap {
			return false
		}
	}
	return c.Store.TotalVisits(day) < c.Rules.DailyCapacity
}
