package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/Abeljo/ECO-SCHEDULER/core/metrics"
	"github.com/Abeljo/ECO-SCHEDULER/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB v2 instance.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns the
// no-op sink when the health check fails, so a missing database never blocks
// plan generation.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlacement writes one point per committed visit.
func (s *InfluxSink) RecordPlacement(ev coremetrics.PlacementEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("visit_planned").
		AddTag("team", ev.Team).
		AddTag("frequency", ev.Frequency).
		AddTag("visit_type", ev.VisitType).
		AddField("customer", ev.Customer).
		SetTime(ev.Date)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordViolation writes one point per recorded violation.
func (s *InfluxSink) RecordViolation(ev coremetrics.ViolationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("rule_violation").
		AddTag("stage", ev.Stage).
		AddField("message", ev.Message).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRun writes the run-level summary point.
func (s *InfluxSink) RecordRun(ev coremetrics.RunEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("planning_run").
		AddTag("run_id", ev.RunID).
		AddTag("month", strconv.Itoa(ev.Year)+"-"+strconv.Itoa(int(ev.Month))).
		AddField("customers", ev.Customers).
		AddField("visits", ev.Visits).
		AddField("violations", ev.Violations).
		AddField("passed", ev.Passed).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts the underlying client down.
func (s *InfluxSink) Close() {
	s.client.Close()
}
