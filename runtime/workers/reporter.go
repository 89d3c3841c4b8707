package workers

import (
	"chat-notifier/observability"
	"context"
	"log/slog"
	"time"
)

// ReporterWorker logs a metrics snapshot at a fixed interval.
type ReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewReporterWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *ReporterWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReporterWorker{log: log, monitoring: monitoring, interval: interval}
}

// Run starts the reporting loop until context cancellation
func (w *ReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.printStats(startTime)
			return nil
		case <-ticker.C:
			w.printStats(startTime)
		}
	}
}

func (w *ReporterWorker) printStats(startTime time.Time) {
	stats := w.monitoring.GetLatest()
	w.log.Info("Pipeline stats",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"received", stats.Received,
		"unauthorized", stats.Unauthorized,
		"dispatched", stats.Dispatched,
		"action_failed", stats.ActionFailed,
		"queue", stats.QueueSize,
		"rss_mb", stats.RSSBytes/1024/1024,
		"cpu", stats.CPUPercent,
	)
}
