package event

import (
	"chat-notifier/errors"
	"log/slog"
)

// DispatchHandler counts pipeline outcomes, per command for dispatches.
// Keys are the event type, and "command:<name>" for each dispatched command.
type DispatchHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewDispatchHandler(log *slog.Logger, counter *Counter) *DispatchHandler {
	return &DispatchHandler{log: log, counter: counter}
}

func (h *DispatchHandler) Handle(e Event) {
	switch e.Type {
	case MessageReceivedType, UnauthorizedType, MessageAuthorizedType:
		h.counter.Increment(string(e.Type))
	case CommandDispatchedType:
		payload, ok := e.Payload.(CommandDispatched)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(string(e.Type))
		h.counter.Increment(CommandKey(payload.Invocation.Command.Name))
	case ActionFailedType:
		payload, ok := e.Payload.(ActionFailed)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(string(e.Type))
		h.log.Warn("Action failed", "command", payload.Command, "user", payload.User, "error", payload.Err)
	}
}

func CommandKey(name string) string {
	return "command:" + name
}
