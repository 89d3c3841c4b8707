package workers

import (
	"chat-notifier/domain/event"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTelemetryWorker_Feeds_Handlers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	counter := event.NewCounter()
	telemetry := make(chan event.Event, 4)

	worker := NewTelemetryWorker(log, telemetry, []event.Handler{event.NewDispatchHandler(log, counter)})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	telemetry <- event.New(event.UnauthorizedType, event.Unauthorized{User: "mallory"})

	req.Eventually(func() bool {
		return counter.Get(string(event.UnauthorizedType)) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestChannelCapacityWorker_Samples_Channels(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetry := make(chan event.Event, 4)
	inbound := make(chan int, 8)
	inbound <- 1

	worker := NewChannelCapacityWorker(log, []NamedChannel{{Name: "inbound", Channel: inbound}},
		telemetry, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	select {
	case evt := <-telemetry:
		payload := evt.Payload.(event.ChannelCapacity)
		req.Equal("inbound", payload.ChannelName)
		req.Equal(8, payload.Capacity)
		req.Equal(1, payload.Length)
	case <-time.After(time.Second):
		req.Fail("no capacity sample")
	}
}
