package sink

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
)

// Broadcast hands every notification to several notifiers.
type Broadcast struct {
	notifiers []contract.INotifier
}

func NewBroadcast(notifiers ...contract.INotifier) *Broadcast {
	return &Broadcast{notifiers: notifiers}
}

func (b *Broadcast) Launch(n domain.Notification) {
	for _, notifier := range b.notifiers {
		notifier.Launch(n)
	}
}

// EventNotifier turns launched notifications into pipeline events so event
// sinks such as History can record them.
type EventNotifier struct {
	emit func(event.Event)
}

func NewEventNotifier(emit func(event.Event)) *EventNotifier {
	return &EventNotifier{emit: emit}
}

func (e *EventNotifier) Launch(n domain.Notification) {
	e.emit(event.New(event.NotificationType, event.NotificationLaunched{Notification: n}))
}
