package sink

import (
	"log/slog"
	"strings"
)

// playerLogWriter forwards the output of an external player to the logger.
type playerLogWriter struct {
	log     *slog.Logger
	program string
	isError bool
}

func (w *playerLogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\r\n")
	if msg == "" {
		return len(p), nil
	}
	if w.isError {
		w.log.Warn(msg, "player", w.program)
	} else {
		w.log.Debug(msg, "player", w.program)
	}
	return len(p), nil
}
