package workers

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"context"
	"log/slog"
)

// DispatchWorker is the single consumer of the inbound chat channel.
// It authorizes the sender and hands the message to the dispatcher, so
// actions never run on the transport goroutine.
type DispatchWorker struct {
	log        *slog.Logger
	inbound    chan domain.Delivery
	events     chan event.Event
	authorizer contract.IAuthorizer
	dispatcher contract.IDispatcher
}

func NewDispatchWorker(log *slog.Logger, inbound chan domain.Delivery, events chan event.Event,
	authorizer contract.IAuthorizer, dispatcher contract.IDispatcher) *DispatchWorker {
	return &DispatchWorker{
		log:        log,
		inbound:    inbound,
		events:     events,
		authorizer: authorizer,
		dispatcher: dispatcher,
	}
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping dispatch")
			return nil
		case delivery := <-w.inbound:
			w.handle(ctx, delivery)
		}
	}
}

func (w *DispatchWorker) handle(ctx context.Context, delivery domain.Delivery) {
	msg := delivery.Message
	w.emit(event.New(event.MessageReceivedType, event.MessageReceived{
		Message:    msg,
		ReceivedAt: delivery.ReceivedAt,
	}))

	if !w.authorizer.IsAuthorized(msg.User) {
		w.log.Debug("Unauthorized user", "user", msg.User)
		w.emit(event.New(event.UnauthorizedType, event.Unauthorized{User: msg.User}))
		return
	}

	w.emit(event.New(event.MessageAuthorizedType, event.MessageAuthorized{
		Message:    msg,
		ReceivedAt: delivery.ReceivedAt,
	}))
	w.dispatcher.Dispatch(ctx, delivery)
}

func (w *DispatchWorker) emit(e event.Event) {
	select {
	case w.events <- e:
	default:
		w.log.Debug("Pipeline event lost", "type", e.Type)
	}
}
