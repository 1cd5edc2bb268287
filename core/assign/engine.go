// Package assign implements the constraint-based visit assignment engine:
// four frequency strategies committing visits into a shared schedule store
// through the admissibility checker.
package assign

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/calendar"
	"github.com/Abeljo/ECO-SCHEDULER/core/events"
	"github.com/Abeljo/ECO-SCHEDULER/core/logger"
	"github.com/Abeljo/ECO-SCHEDULER/core/model"
	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
	"github.com/Abeljo/ECO-SCHEDULER/internal/eventbus"
)

// Assigner places every customer of one frequency class.
type Assigner interface {
	Name() string
	Assign(customers []model.Customer)
}

// Engine owns the store, the checker and the violation log for one run and
// executes the assigners in fixed priority order: VIP, Bi-Monthly, Monthly,
// Quarterly. Earlier commitments constrain later ones, so the order is part
// of the contract. The engine is single-writer; commits are never revisited.
type Engine struct {
	store   *schedule.Store
	checker *schedule.Checker
	log     *schedule.ViolationLog
	rules   schedule.Rules
	rng     *rand.Rand
	seed    int64
	logger  logger.Logger
	bus     eventbus.EventBus
}

// Result is the outcome of one run before validation.
type Result struct {
	Store *schedule.Store
	Log   *schedule.ViolationLog
	Seed  int64
}

// NewEngine creates an engine over the given month. A zero seed is replaced
// by the wall clock and logged so the run can be reproduced. The bus is
// optional; observers such as the metrics collector subscribe to it.
func NewEngine(days []calendar.Day, rules schedule.Rules, seed int64, log logger.Logger, bus eventbus.EventBus) (*Engine, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("assign: no calendar days provided")
	}
	if log == nil {
		return nil, fmt.Errorf("assign: nil logger provided to NewEngine")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("assign: invalid rules: %w", err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.Infof("monthly shuffle seed derived from clock: %d", seed)
	}
	store := schedule.NewStore(days)
	return &Engine{
		store:  store,
		log:    &schedule.ViolationLog{},
		rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		logger: log,
		bus:    bus,
	}, nil
}

// Run executes the four assigners over the customer list and returns the
// committed store and the violation log. The customer list is read-only for
// the whole run.
func (e *Engine) Run(customers []model.Customer) *Result {
	e.checker = &schedule.Checker{
		Store:    e.store,
		Rules:    e.rules,
		VIPTeams: model.VIPTeams(customers),
	}
	byClass := make(map[model.Frequency][]model.Customer)
	for _, c := range customers {
		byClass[c.Frequency] = append(byClass[c.Frequency], c)
	}
	for _, a := range []Assigner{
		vipAssigner{e},
		biMonthlyAssigner{e},
		monthlyAssigner{e},
		quarterlyAssigner{e},
	} {
		list := byClass[classOf(a)]
		e.logger.Debugf("assigner %s: %d customers", a.Name(), len(list))
		a.Assign(list)
	}
	return &Result{Store: e.store, Log: e.log, Seed: e.seed}
}

func classOf(a Assigner) model.Frequency {
	switch a.(type) {
	case vipAssigner:
		return model.FrequencyVIP
	case biMonthlyAssigner:
		return model.FrequencyBiMonthly
	case monthlyAssigner:
		return model.FrequencyMonthly
	default:
		return model.FrequencyQuarterly
	}
}

// date returns the calendar date of the 1-based day of month.
func (e *Engine) date(day int) string {
	return e.store.Day(day).Date.Format("2006-01-02")
}

// commit places the visit and notifies the observers.
func (e *Engine) commit(day int, c model.Customer, t model.VisitType) {
	v := model.Visit{Customer: c.Name, Team: c.Team, Type: t, Location: c.Location, Day: day}
	e.store.Add(day, v)
	date := e.store.Day(day).Date
	e.logger.Debugw("visit committed", map[string]any{
		"customer": c.Name,
		"team":     c.Team,
		"type":     t.String(),
		"date":     date.Format("2006-01-02"),
	})
	if e.bus != nil {
		e.bus.Publish(events.PlacementEvent{Visit: v, Date: date})
	}
}

// violate records a placement the engine could not satisfy. Violations never
// abort the run.
func (e *Engine) violate(stage, format string, args ...any) {
	e.log.Addf(stage, format, args...)
	msg := fmt.Sprintf(format, args...)
	e.logger.Warnf("%s", msg)
	if e.bus != nil {
		e.bus.Publish(events.ViolationEvent{Stage: stage, Message: msg})
	}
}
