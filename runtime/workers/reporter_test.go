package workers

import (
	"chat-notifier/domain/event"
	"chat-notifier/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestReporterWorker_Stops_On_Cancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	counter := event.NewCounter()
	counter.Increment(string(event.MessageReceivedType))
	monitoring := observability.NewMonitoringManager(log, counter, nil, time.Second)
	worker := NewReporterWorker(log, monitoring, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
}
