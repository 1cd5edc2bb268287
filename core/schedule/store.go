// Package schedule holds the mutable state of one planning run: the day
// store, the admissibility checker, the violation log and the run summary.
package schedule

import (
	"sort"
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/calendar"
	"github.com/Abeljo/ECO-SCHEDULER/core/model"
)

// Day is one schedulable date together with its committed visits per team.
type Day struct {
	Date    time.Time                `json:"date"`
	Working bool                     `json:"working"`
	Jobs    map[string][]model.Visit `json:"jobs"`
}

// Store owns every Day and Visit record for a single run. Assigners and the
// validator share it; there is exactly one writer at a time by construction.
type Store struct {
	days []*Day
}

// NewStore initializes an empty store over the given calendar days.
func NewStore(days []calendar.Day) *Store {
	s := &Store{days: make([]*Day, 0, len(days))}
	for _, d := range days {
		s.days = append(s.days, &Day{
			Date:    d.Date,
			Working: d.Working,
			Jobs:    make(map[string][]model.Visit),
		})
	}
	return s
}

// Len returns the number of days in the month.
func (s *Store) Len() int { return len(s.days) }

// Day returns the descriptor for the 1-based day of month, or nil when the
// day does not exist in the target month.
func (s *Store) Day(n int) *Day {
	if n < 1 || n > len(s.days) {
		return nil
	}
	return s.days[n-1]
}

// Days returns all day descriptors in calendar order.
func (s *Store) Days() []*Day { return s.days }

// Add commits a visit to the given day. Committed visits are never moved or
// deleted.
func (s *Store) Add(n int, v model.Visit) {
	d := s.Day(n)
	d.Jobs[v.Team] = append(d.Jobs[v.Team], v)
}

// TotalVisits counts every visit committed to the day.
func (s *Store) TotalVisits(n int) int {
	d := s.Day(n)
	if d == nil {
		return 0
	}
	total := 0
	for _, visits := range d.Jobs {
		total += len(visits)
	}
	return total
}

// TeamLoad counts the visits committed to the day for one team.
func (s *Store) TeamLoad(n int, team string) int {
	d := s.Day(n)
	if d == nil {
		return 0
	}
	return len(d.Jobs[team])
}

// ActiveTeams returns the teams with at least one visit on the day, sorted
// for deterministic iteration.
func (s *Store) ActiveTeams(n int) []string {
	d := s.Day(n)
	if d == nil {
		return nil
	}
	teams := make([]string, 0, len(d.Jobs))
	for team, visits := range d.Jobs {
		if len(visits) > 0 {
			teams = append(teams, team)
		}
	}
	sort.Strings(teams)
	return teams
}

// HasVIP reports whether the day already hosts a VIP visit.
func (s *Store) HasVIP(n int) bool {
	d := s.Day(n)
	if d == nil {
		return false
	}
	for _, visits := range d.Jobs {
		for _, v := range visits {
			if v.IsVIP() {
				return true
			}
		}
	}
	return false
}

// TeamHasVIP reports whether the team performs a VIP visit on the day.
func (s *Store) TeamHasVIP(n int, team string) bool {
	d := s.Day(n)
	if d == nil {
		return false
	}
	for _, v := range d.Jobs[team] {
		if v.IsVIP() {
			return true
		}
	}
	return false
}

// TeamAtLocation reports whether the team already visits the given location
// on the day. Used by the rankers for the locality tie-break.
func (s *Store) TeamAtLocation(n int, team, location string) bool {
	if location == "" {
		return false
	}
	d := s.Day(n)
	if d == nil {
		return false
	}
	for _, v := range d.Jobs[team] {
		if v.Location == location {
			return true
		}
	}
	return false
}

// VisitsFor collects every visit committed for the customer, in day order.
func (s *Store) VisitsFor(customer string) []model.Visit {
	var visits []model.Visit
	for _, d := range s.days {
		for _, teamVisits := range d.Jobs {
			for _, v := range teamVisits {
				if v.Customer == customer {
					visits = append(visits, v)
				}
			}
		}
	}
	sort.Slice(visits, func(i, j int) bool { return visits[i].Day < visits[j].Day })
	return visits
}

// AllVisits flattens the store into a single day-ordered visit list.
func (s *Store) AllVisits() []model.Visit {
	var visits []model.Visit
	for n := 1; n <= len(s.days); n++ {
		d := s.days[n-1]
		for _, team := range s.ActiveTeams(n) {
			visits = append(visits, d.Jobs[team]...)
		}
	}
	return visits
}
