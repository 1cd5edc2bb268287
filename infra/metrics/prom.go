// Package metrics provides the Prometheus and InfluxDB sinks for planning
// run observability.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/Abeljo/ECO-SCHEDULER/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	placements *prometheus.CounterVec
	violations *prometheus.CounterVec
	dailyLoad  prometheus.Histogram
	customers  prometheus.Gauge
}

// NewPromSink registers the planning metrics on the default Prometheus
// registerer. The metrics listener is started separately with
// StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer. A nil
// registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	placements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "visits_planned_total",
		Help: "Total number of visits committed to the schedule",
	}, []string{"team", "frequency"})
	violations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rule_violations_total",
		Help: "Total number of scheduling rule violations recorded",
	}, []string{"stage"})
	dailyLoad := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "visits_per_day",
		Help:    "Distribution of committed visits per calendar day",
		Buckets: prometheus.LinearBuckets(0, 2, 10),
	})
	customers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduled_customers",
		Help: "Number of customers covered by the latest planning run",
	})

	if err := reg.Register(placements); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			placements = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(violations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			violations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(dailyLoad); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			dailyLoad = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(customers); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			customers = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return &PromSink{placements: placements, violations: violations, dailyLoad: dailyLoad, customers: customers}, nil
}

// RecordPlacement increments the placement counter.
func (s *PromSink) RecordPlacement(ev coremetrics.PlacementEvent) error {
	s.placements.WithLabelValues(ev.Team, ev.Frequency).Inc()
	return nil
}

// RecordViolation increments the violation counter for the stage.
func (s *PromSink) RecordViolation(ev coremetrics.ViolationEvent) error {
	s.violations.WithLabelValues(ev.Stage).Inc()
	return nil
}

// RecordRun sets the customer gauge and observes the per-day load histogram.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.customers.Set(float64(ev.Customers))
	for _, load := range ev.DayLoads {
		s.dailyLoad.Observe(load)
	}
	return nil
}

// StartPromServer exposes /metrics on the given port until the context is
// canceled.
func StartPromServer(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
