package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Abeljo/ECO-SCHEDULER/core/calendar"
	"github.com/Abeljo/ECO-SCHEDULER/core/model"
)

func newJuneStore(t *testing.T) *Store {
	t.Helper()
	// June 2025 starts on a Sunday, so days 1, 8, 15, 22 and 29 are rest days.
	return NewStore(calendar.Month(2025, time.June, time.Sunday))
}

func TestStore_DayBounds(t *testing.T) {
	s := newJuneStore(t)
	assert.Equal(t, 30, s.Len())
	assert.Nil(t, s.Day(0))
	assert.Nil(t, s.Day(31))
	assert.NotNil(t, s.Day(1))
	assert.False(t, s.Day(1).Working)
	assert.True(t, s.Day(2).Working)
}

func TestStore_AddAndCounts(t *testing.T) {
	s := newJuneStore(t)
	s.Add(2, model.Visit{Customer: "acme", Team: "north", Type: model.VisitQuarterly, Day: 2})
	s.Add(2, model.Visit{Customer: "globex", Team: "north", Type: model.VisitBiMonthly, Day: 2})
	s.Add(2, model.Visit{Customer: "initech", Team: "south", Type: model.VisitQuarterly, Day: 2})

	assert.Equal(t, 3, s.TotalVisits(2))
	assert.Equal(t, 2, s.TeamLoad(2, "north"))
	assert.Equal(t, 1, s.TeamLoad(2, "south"))
	assert.Equal(t, []string{"north", "south"}, s.ActiveTeams(2))
	assert.Equal(t, 0, s.TotalVisits(3))
}

func TestStore_VIPQueries(t *testing.T) {
	s := newJuneStore(t)
	s.Add(3, model.Visit{Customer: "crown", Team: "vip-team", Type: model.VisitVIP, Day: 3})
	s.Add(3, model.Visit{Customer: "acme", Team: "north", Type: model.VisitQuarterly, Day: 3})

	assert.True(t, s.HasVIP(3))
	assert.False(t, s.HasVIP(4))
	assert.True(t, s.TeamHasVIP(3, "vip-team"))
	assert.False(t, s.TeamHasVIP(3, "north"))
}

func TestStore_TeamAtLocation(t *testing.T) {
	s := newJuneStore(t)
	s.Add(2, model.Visit{Customer: "acme", Team: "north", Location: "harbor", Day: 2})

	assert.True(t, s.TeamAtLocation(2, "north", "harbor"))
	assert.False(t, s.TeamAtLocation(2, "north", "uptown"))
	assert.False(t, s.TeamAtLocation(2, "south", "harbor"))
	assert.False(t, s.TeamAtLocation(2, "north", ""))
}

func TestStore_VisitsForIsDayOrdered(t *testing.T) {
	s := newJuneStore(t)
	s.Add(17, model.Visit{Customer: "acme", Team: "north", Type: model.VisitMonthly2, Day: 17})
	s.Add(4, model.Visit{Customer: "acme", Team: "north", Type: model.VisitMonthly1, Day: 4})
	s.Add(5, model.Visit{Customer: "globex", Team: "north", Type: model.VisitQuarterly, Day: 5})

	visits := s.VisitsFor("acme")
	assert.Len(t, visits, 2)
	assert.Equal(t, 4, visits[0].Day)
	assert.Equal(t, 17, visits[1].Day)
}

func TestViolationLog_AppendOnlyNoDedup(t *testing.T) {
	log := &ViolationLog{}
	assert.True(t, log.Empty())
	log.Addf("vip", "VIP visit for %s could not be placed on %s", "crown", "2025-06-01")
	log.Addf("vip", "VIP visit for %s could not be placed on %s", "crown", "2025-06-01")
	log.Addf("validate", "some other problem")

	assert.Equal(t, 3, log.Len())
	assert.False(t, log.Empty())
	// The same message twice stays twice.
	msgs := log.Messages()
	assert.Equal(t, msgs[0], msgs[1])
	assert.Equal(t, "vip", log.Entries()[0].Stage)
	assert.Equal(t, "validate", log.Entries()[2].Stage)
}
