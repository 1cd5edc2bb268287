// Package app wires configuration, ingestion, the assignment engine,
// validation, reporting and persistence into the runnable service.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	apischedule "github.com/Abeljo/ECO-SCHEDULER/api/schedule"
	"github.com/Abeljo/ECO-SCHEDULER/config"
	"github.com/Abeljo/ECO-SCHEDULER/core/archive"
	"github.com/Abeljo/ECO-SCHEDULER/core/assign"
	"github.com/Abeljo/ECO-SCHEDULER/core/calendar"
	coremetrics "github.com/Abeljo/ECO-SCHEDULER/core/metrics"
	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
	"github.com/Abeljo/ECO-SCHEDULER/core/validate"
	"github.com/Abeljo/ECO-SCHEDULER/infra/ingest"
	"github.com/Abeljo/ECO-SCHEDULER/infra/logger"
	"github.com/Abeljo/ECO-SCHEDULER/infra/metrics"
	"github.com/Abeljo/ECO-SCHEDULER/infra/report"
	"github.com/Abeljo/ECO-SCHEDULER/internal/eventbus"
)

// Service holds the wired collaborators for one process.
type Service struct {
	cfg     *config.Config
	log     logger.Logger
	sink    coremetrics.MetricsSink
	archive archive.RunStore
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	store, err := newRunStore(cfg.Archive)
	if err != nil {
		return nil, fmt.Errorf("run archive: %w", err)
	}
	return &Service{cfg: cfg, log: logg, sink: sink, archive: store}, nil
}

func newRunStore(cfg config.ArchiveConfig) (archive.RunStore, error) {
	switch cfg.Backend {
	case "sqlite":
		return archive.NewSQLiteStore(cfg.Path)
	default:
		return archive.NewJSONLStore(cfg.Path)
	}
}

// Plan executes one full planning run: load customers, assign visits,
// validate, render the report, archive the run and emit metrics. Rule
// violations never fail the run; only structural errors do.
func (s *Service) Plan(ctx context.Context) (*archive.RunRecord, error) {
	cfg := s.cfg
	customers, err := ingest.Load(ctx, cfg.Ingest)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	s.log.Infof("loaded %d customers from %s source", len(customers), cfg.Ingest.Source)

	bus := eventbus.New()
	collected := metrics.StartEventCollector(ctx, bus, s.sink)

	month := time.Month(cfg.Plan.Month)
	days := calendar.Month(cfg.Plan.Year, month, cfg.Rules.RestWeekday())
	engine, err := assign.NewEngine(days, cfg.Rules, cfg.Plan.Seed, logger.New("engine"), bus)
	if err != nil {
		return nil, err
	}
	res := engine.Run(customers)

	validator := &validate.Validator{
		Store:     res.Store,
		Rules:     cfg.Rules,
		Customers: customers,
		Log:       res.Log,
	}
	passed := validator.Validate()
	bus.Close()
	<-collected

	summary := schedule.BuildSummary(res.Store, customers, cfg.Rules, res.Log)
	rec := archive.RunRecord{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Year:       cfg.Plan.Year,
		Month:      month,
		Seed:       res.Seed,
		Summary:    summary,
		Visits:     res.Store.AllVisits(),
		Violations: res.Log.Messages(),
	}
	dayLoads := make([]float64, res.Store.Len())
	for n := 1; n <= res.Store.Len(); n++ {
		dayLoads[n-1] = float64(res.Store.TotalVisits(n))
	}
	if err := s.sink.RecordRun(coremetrics.RunEvent{
		RunID:      rec.ID,
		Year:       rec.Year,
		Month:      rec.Month,
		Customers:  summary.TotalCustomers,
		Visits:     summary.TotalVisits,
		Violations: res.Log.Len(),
		Passed:     passed,
		DayLoads:   dayLoads,
		Time:       rec.CreatedAt,
	}); err != nil {
		s.log.Errorf("record run metrics: %v", err)
	}

	if err := s.writeReport(report.Data{
		Year:          rec.Year,
		Month:         rec.Month,
		Days:          res.Store.Days(),
		Summary:       summary,
		DailyCapacity: cfg.Rules.DailyCapacity,
	}); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	if err := s.archive.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("archive run: %w", err)
	}
	if passed {
		s.log.Infof("run %s: %d visits committed, validation passed", rec.ID, summary.TotalVisits)
	} else {
		s.log.Warnf("run %s: %d visits committed, %d violations", rec.ID, summary.TotalVisits, res.Log.Len())
	}
	return &rec, nil
}

func (s *Service) writeReport(data report.Data) error {
	cfg := s.cfg.Report
	var w io.Writer = os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return report.Render(w, cfg.Format, data)
}

// Serve exposes the run archive over HTTP until the context is canceled.
func (s *Service) Serve(ctx context.Context) error {
	router := apischedule.NewRouter(s.archive, apischedule.Options{
		AllowedOrigins: s.cfg.API.AllowedOrigins,
		Token:          s.cfg.API.Token,
	})
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: router}
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.log.Infof("serving schedule API on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	return s.archive.Close()
}
