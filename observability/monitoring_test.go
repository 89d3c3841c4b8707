package observability

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Merges_Counters(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	counter := event.NewCounter()
	handler := event.NewDispatchHandler(log, counter)

	// Given a few pipeline events
	handler.Handle(event.New(event.MessageReceivedType, event.MessageReceived{}))
	handler.Handle(event.New(event.MessageReceivedType, event.MessageReceived{}))
	handler.Handle(event.New(event.UnauthorizedType, event.Unauthorized{User: "eve"}))
	handler.Handle(event.New(event.MessageAuthorizedType, event.MessageAuthorized{}))
	handler.Handle(event.New(event.CommandDispatchedType, event.CommandDispatched{
		Invocation: domain.Invocation{Command: domain.Command{Name: "notify"}},
	}))

	mm := NewMonitoringManager(log, counter, func() (int, int) { return 3, 16 }, time.Second)

	// When reading the stats
	stats := mm.GetLatest()

	// Then counters and queue usage are reported
	req.Equal(uint64(2), stats.Received)
	req.Equal(uint64(1), stats.Unauthorized)
	req.Equal(uint64(1), stats.Authorized)
	req.Equal(uint64(1), stats.Dispatched)
	req.Zero(stats.ActionFailed)
	req.Equal(map[string]uint64{"notify": 1}, stats.PerCommand)
	req.Equal(3, stats.QueueSize)
	req.Equal(16, stats.QueueCapacity)
}

func TestMonitoringManager_Samples_Process(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mm := NewMonitoringManager(log, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- mm.Run(ctx) }()

	req.Eventually(func() bool {
		return !mm.GetLatest().SampledAt.IsZero()
	}, time.Second, 10*time.Millisecond)
	req.NotZero(mm.GetLatest().RSSBytes)

	cancel()
	req.NoError(<-done)
}
