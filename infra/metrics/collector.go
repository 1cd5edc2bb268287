package metrics

import (
	"context"
	"time"

	"github.com/Abeljo/ECO-SCHEDULER/core/events"
	coremetrics "github.com/Abeljo/ECO-SCHEDULER/core/metrics"
	"github.com/Abeljo/ECO-SCHEDULER/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and forwards placement and
// violation events to the sink. It stops when the context is canceled or the
// bus is closed; the returned channel is closed once the collector has
// drained, so one-shot callers can wait before exiting.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.PlacementEvent:
					if r, ok := sink.(coremetrics.PlacementRecorder); ok {
						_ = r.RecordPlacement(coremetrics.PlacementEvent{
							Customer:  e.Visit.Customer,
							Team:      e.Visit.Team,
							Frequency: e.Visit.Type.Frequency().String(),
							VisitType: e.Visit.Type.String(),
							Date:      e.Date,
						})
					}
				case events.ViolationEvent:
					if r, ok := sink.(coremetrics.ViolationRecorder); ok {
						_ = r.RecordViolation(coremetrics.ViolationEvent{
							Stage:   e.Stage,
							Message: e.Message,
							Time:    time.Now(),
						})
					}
				}
			}
		}
	}()
	return done
}
