package event

import (
	"log/slog"
	"time"
)

// LatencyHandler reports how long a chat line took from the socket to its action.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	if payload, ok := e.Payload.(CommandDispatched); ok {
		leadTime := time.Since(payload.Invocation.ReceivedAt)

		h.log.Debug("telemetry: dispatch latency",
			"command", payload.Invocation.Command.Name,
			"user", payload.Invocation.User,
			"action_ms", payload.Duration.Milliseconds(),
			"lead_time_ms", leadTime.Milliseconds(),
		)

		if leadTime > h.latencyThreshold {
			h.log.Warn("high latency detected", "lead_time", leadTime)
		}
	}
}
