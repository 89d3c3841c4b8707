package event

import (
	"chat-notifier/domain"
	"time"
)

type Type string

const (
	MessageReceivedType   Type = "MESSAGE_RECEIVED"
	MessageAuthorizedType Type = "MESSAGE_AUTHORIZED"
	UnauthorizedType      Type = "UNAUTHORIZED"
	CommandDispatchedType Type = "COMMAND_DISPATCHED"
	ActionFailedType      Type = "ACTION_FAILED"
	ConnectionChangedType Type = "CONNECTION_CHANGED"
	NotificationType      Type = "NOTIFICATION"
)

// Event is the envelope flowing from the dispatch pipeline to sinks and telemetry.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

type MessageReceived struct {
	Message    domain.ChatMessage
	ReceivedAt time.Time
}

type MessageAuthorized struct {
	Message    domain.ChatMessage
	ReceivedAt time.Time
}

type Unauthorized struct {
	User string
}

type CommandDispatched struct {
	Invocation domain.Invocation
	Duration   time.Duration
}

type ActionFailed struct {
	Command string
	User    string
	Err     error
}

type ConnectionChanged struct {
	Channel   string
	Connected bool
}

type NotificationLaunched struct {
	Notification domain.Notification
}
