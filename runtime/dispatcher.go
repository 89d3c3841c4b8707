package runtime

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Dispatcher resolves a chat message to at most one command and runs its action.
type Dispatcher struct {
	log     *slog.Logger
	table   *CommandTable
	actions *ActionRegistry
	events  chan<- event.Event
}

// NewDispatcher builds a dispatcher. events may be nil, outcomes are then only logged.
func NewDispatcher(log *slog.Logger, table *CommandTable, actions *ActionRegistry,
	events chan<- event.Event) *Dispatcher {
	return &Dispatcher{log: log, table: table, actions: actions, events: events}
}

// Resolve finds the command matching the leading token of msg.
//
// The table is scanned longest call string first. A candidate is rejected
// when the token and "!"+callString differ in length, so "!cc" never fires on
// "!ccc" or "!hiccup". Among candidates of the right length the first one whose
// full call string is contained in the token, ignoring case, wins.
func (d *Dispatcher) Resolve(msg domain.ChatMessage) (domain.Invocation, bool) {
	token, ok := msg.CommandToken()
	if !ok {
		return domain.Invocation{}, false
	}
	lowered := strings.ToLower(token)

	for _, cmd := range d.table.Snapshot() {
		full := cmd.FullCallString()
		if len(token) < len(full) {
			continue
		}
		if len(full) < len(token) {
			continue
		}
		if !strings.Contains(lowered, strings.ToLower(full)) {
			continue
		}
		return domain.Invocation{
			Command: cmd,
			User:    msg.User,
			Channel: msg.Channel,
			Payload: payload(msg.Message, len(full)),
		}, true
	}
	return domain.Invocation{}, false
}

// Dispatch resolves the delivered message and invokes the bound action once.
// A failing or panicking action is logged and reported as ActionFailed, it
// never reaches the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, delivery domain.Delivery) (domain.Invocation, bool) {
	inv, ok := d.Resolve(delivery.Message)
	if !ok {
		return domain.Invocation{}, false
	}
	inv.ReceivedAt = delivery.ReceivedAt

	start := time.Now()
	if err := d.invoke(ctx, inv); err != nil {
		d.log.Error("Action failed", "command", inv.Command.Name, "user", inv.User, "error", err)
		d.emit(event.New(event.ActionFailedType, event.ActionFailed{
			Command: inv.Command.Name,
			User:    inv.User,
			Err:     err,
		}))
		return inv, true
	}

	d.log.Debug("Command dispatched", "command", inv.Command.Name, "user", inv.User)
	d.emit(event.New(event.CommandDispatchedType, event.CommandDispatched{
		Invocation: inv,
		Duration:   time.Since(start),
	}))
	return inv, true
}

func (d *Dispatcher) invoke(ctx context.Context, inv domain.Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrActionPanic, r)
		}
	}()
	action, err := d.actions.Resolve(inv.Command.Action)
	if err != nil {
		return err
	}
	return action(ctx, inv)
}

func (d *Dispatcher) emit(e event.Event) {
	if d.events == nil {
		return
	}
	select {
	case d.events <- e:
	default:
		d.log.Debug("Dispatch event lost", "type", e.Type)
	}
}

// payload drops the matched command from the body, then one separating space.
func payload(body string, commandLen int) string {
	if len(body) <= commandLen {
		return ""
	}
	rest := body[commandLen:]
	if rest[0] == ' ' {
		rest = rest[1:]
	}
	return rest
}
