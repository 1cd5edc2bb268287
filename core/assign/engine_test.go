package assign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abeljo/ECO-SCHEDULER/core/calendar"
	"github.com/Abeljo/ECO-SCHEDULER/core/model"
	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
	"github.com/Abeljo/ECO-SCHEDULER/infra/logger"
)

func juneDays() []calendar.Day {
	// June 2025 starts on a Sunday; rest days are 1, 8, 15, 22, 29.
	return calendar.Month(2025, time.June, time.Sunday)
}

func defaultRules() schedule.Rules {
	r := schedule.Rules{}
	r.SetDefaults()
	return r
}

func newTestEngine(t *testing.T, rules schedule.Rules) *Engine {
	t.Helper()
	e, err := NewEngine(juneDays(), rules, 42, logger.NopLogger{}, nil)
	require.NoError(t, err)
	return e
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := NewEngine(nil, defaultRules(), 1, logger.NopLogger{}, nil)
	assert.Error(t, err)

	_, err = NewEngine(juneDays(), defaultRules(), 1, nil, nil)
	assert.Error(t, err)

	bad := defaultRules()
	bad.RestDay = "Funday"
	_, err = NewEngine(juneDays(), bad, 1, logger.NopLogger{}, nil)
	assert.Error(t, err)
}

func TestRun_SingleQuarterlyLandsOnFirstWorkingDay(t *testing.T) {
	e := newTestEngine(t, defaultRules())
	res := e.Run([]model.Customer{
		{Name: "acme", Team: "north", Frequency: model.FrequencyQuarterly},
	})

	require.True(t, res.Log.Empty())
	visits := res.Store.VisitsFor("acme")
	require.Len(t, visits, 1)
	// The first working day of June 2025 is the 2nd; an empty month ranks all
	// candidates equal and the date tie-break picks the earliest.
	assert.Equal(t, 2, visits[0].Day)
	assert.Equal(t, model.VisitQuarterly, visits[0].Type)
}

func TestRun_VIPCadenceCoversWholeMonth(t *testing.T) {
	e := newTestEngine(t, defaultRules())
	res := e.Run([]model.Customer{
		{Name: "crown", Team: "vip-team", Frequency: model.FrequencyVIP},
	})

	require.True(t, res.Log.Empty())
	visits := res.Store.VisitsFor("crown")
	// Every 2 days from day 1 over a 30-day month: 1, 3, ..., 29.
	require.Len(t, visits, 15)
	for i, v := range visits {
		assert.Equal(t, 1+2*i, v.Day)
		assert.Equal(t, model.VisitVIP, v.Type)
	}
	// Day 1 and day 29 are rest days and the VIP visit lands there anyway.
	assert.Equal(t, 1, res.Store.TeamLoad(1, "vip-team"))
	assert.Equal(t, 1, res.Store.TeamLoad(29, "vip-team"))
}

func TestRun_VIPMissedDayIsLoggedNotRetried(t *testing.T) {
	rules := defaultRules()
	rules.DailyCapacity = 1
	e := newTestEngine(t, rules)
	// Pre-fill day 3 so the cadence slot is inadmissible.
	e.store.Add(3, model.Visit{Customer: "blocker", Team: "other", Type: model.VisitQuarterly, Day: 3})

	res := e.Run([]model.Customer{
		{Name: "crown", Team: "vip-team", Frequency: model.FrequencyVIP},
	})

	visits := res.Store.VisitsFor("crown")
	require.Len(t, visits, 14)
	for _, v := range visits {
		assert.NotEqual(t, 3, v.Day)
		// No shifted make-up visit on day 4 either.
		assert.NotEqual(t, 4, v.Day)
	}
	require.Equal(t, 1, res.Log.Len())
	assert.Equal(t, "vip", res.Log.Entries()[0].Stage)
	assert.Contains(t, res.Log.Entries()[0].Message, "could not be placed on 2025-06-03")
}

func TestRun_MonthlyGapWindow(t *testing.T) {
	e := newTestEngine(t, defaultRules())
	res := e.Run([]model.Customer{
		{Name: "acme", Team: "north", Frequency: model.FrequencyMonthly},
	})

	require.True(t, res.Log.Empty())
	visits := res.Store.VisitsFor("acme")
	require.Len(t, visits, 2)
	assert.Equal(t, model.VisitMonthly1, visits[0].Type)
	assert.Equal(t, model.VisitMonthly2, visits[1].Type)
	assert.LessOrEqual(t, visits[0].Day, 15)
	gap := visits[1].Day - visits[0].Day
	assert.GreaterOrEqual(t, gap, 12)
	assert.LessOrEqual(t, gap, 16)
}

func TestRun_MonthlySecondVisitImpossible(t *testing.T) {
	rules := defaultRules()
	// With the first visit forced late, no working day can satisfy the gap.
	rules.MonthlyGapMin = 20
	rules.MonthlyGapMax = 25
	rules.MonthlyFirstBy = 15
	e := newTestEngine(t, rules)
	// Fill days 2-13 to capacity for the team so the first visit lands on 14.
	for d := 2; d <= 13; d++ {
		for i := 0; i < rules.DailyCapacity; i++ {
			e.store.Add(d, model.Visit{Customer: "blocker", Team: "north", Type: model.VisitQuarterly, Day: d})
		}
	}
	res := e.Run([]model.Customer{
		{Name: "acme", Team: "north", Frequency: model.FrequencyMonthly},
	})

	visits := res.Store.VisitsFor("acme")
	require.Len(t, visits, 1)
	assert.Equal(t, model.VisitMonthly1, visits[0].Type)
	require.Equal(t, 1, res.Log.Len())
	assert.Contains(t, res.Log.Entries()[0].Message, "20-25 days after")
}

func TestRun_DeterministicUnderFixedSeed(t *testing.T) {
	customers := []model.Customer{
		{Name: "crown", Team: "vip-team", Frequency: model.FrequencyVIP},
		{Name: "m1", Team: "north", Frequency: model.FrequencyMonthly},
		{Name: "m2", Team: "north", Frequency: model.FrequencyMonthly},
		{Name: "m3", Team: "south", Frequency: model.FrequencyMonthly},
		{Name: "b1", Team: "south", Frequency: model.FrequencyBiMonthly},
		{Name: "q1", Team: "east", Frequency: model.FrequencyQuarterly},
	}
	run := func() []model.Visit {
		e := newTestEngine(t, defaultRules())
		return e.Run(customers).Store.AllVisits()
	}
	first := run()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, run())
	}
}

func TestRun_SeedChangesMonthlyOrder(t *testing.T) {
	customers := make([]model.Customer, 0, 8)
	for _, name := range []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8"} {
		customers = append(customers, model.Customer{Name: name, Team: "north", Frequency: model.FrequencyMonthly})
	}
	run := func(seed int64) []model.Visit {
		e, err := NewEngine(juneDays(), defaultRules(), seed, logger.NopLogger{}, nil)
		require.NoError(t, err)
		return e.Run(customers).Store.AllVisits()
	}
	a, b := run(1), run(99)
	// Different seeds shuffle the Monthly order; with 8 customers on one team
	// the placements almost surely differ.
	assert.NotEqual(t, a, b)
}

func TestRun_PriorityOrderProtectsVIP(t *testing.T) {
	rules := defaultRules()
	rules.DailyCapacity = 2
	e := newTestEngine(t, rules)
	customers := []model.Customer{
		// Listed last on purpose; the engine still assigns VIP first.
		{Name: "q1", Team: "north", Frequency: model.FrequencyQuarterly},
		{Name: "crown", Team: "vip-team", Frequency: model.FrequencyVIP},
	}
	res := e.Run(customers)

	// VIP cadence is complete despite the tight capacity.
	assert.Len(t, res.Store.VisitsFor("crown"), 15)
	assert.Len(t, res.Store.VisitsFor("q1"), 1)
}

func TestRankDays_PrefersLowTeamLoadThenLocation(t *testing.T) {
	e := newTestEngine(t, defaultRules())
	e.store.Add(2, model.Visit{Customer: "x", Team: "north", Location: "harbor", Day: 2})
	e.store.Add(3, model.Visit{Customer: "y", Team: "north", Day: 3})
	e.store.Add(3, model.Visit{Customer: "z", Team: "north", Day: 3})

	c := model.Customer{Name: "acme", Team: "north", Location: "harbor"}
	ranked := e.rankDays([]int{2, 3, 4, 5}, c)
	// Days 4 and 5 are empty for the team and win; then day 2 beats day 3 on
	// load, and would also win the location tie-break.
	assert.Equal(t, []int{4, 5, 2, 3}, ranked)

	// With equal team loads the location match is decisive.
	e.store.Add(5, model.Visit{Customer: "w", Team: "north", Day: 5})
	ranked = e.rankDays([]int{5, 2}, c)
	assert.Equal(t, []int{2, 5}, ranked)
}
