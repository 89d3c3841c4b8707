package workers

import (
	"chat-notifier/contract"
	"chat-notifier/domain/event"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// EventFanout broadcasts pipeline events to in-process sinks.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. Each sink gets sinkTimeout to consume an
// event, a slow or failing sink is logged and skipped.
//
// Every event is then forwarded to the telemetry channel, dropped if full.
type EventFanout struct {
	log            *slog.Logger
	events         chan event.Event
	telemetryEvent chan event.Event
	sinks          []contract.EventSink
	sinkTimeout    time.Duration
}

func NewEventFanout(log *slog.Logger, sinks []contract.EventSink,
	events, telemetryEvent chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:            log,
		events:         events,
		telemetryEvent: telemetryEvent,
		sinks:          sinks,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
			select {
			case w.telemetryEvent <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout One sink for each event
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event",
				"sink", sinkName(sink), "type", evt.Type, "error", err)
		}
		cancel()
	}
}

func sinkName(sink contract.EventSink) string {
	return fmt.Sprintf("%T", sink)
}
