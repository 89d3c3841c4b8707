//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// INotifier receives notifications produced by actions.
// Launch is fire-and-forget and must never block the caller.
type INotifier interface {
	Launch(n domain.Notification)
}

// IPlayer plays sound assets and reads text out loud.
type IPlayer interface {
	PlaySound(name string) error
	Speak(user, text string) error
	StopAll()
}

// IChatSource delivers chat messages read from the network.
// Run blocks until ctx is done or the connection is lost for good.
type IChatSource interface {
	Run(ctx context.Context, deliver func(domain.ChatMessage)) error
	Connected() bool
	Channel() string
}

// IChatControl stops and resumes a chat source on request.
type IChatControl interface {
	Connect() error
	Disconnect() error
}

// IAuthorizer gates chat users before dispatch.
type IAuthorizer interface {
	IsAuthorized(user string) bool
}

// IDispatcher resolves a delivered message and runs the matching action.
type IDispatcher interface {
	Dispatch(ctx context.Context, delivery domain.Delivery) (domain.Invocation, bool)
}

type ICommandRepository interface {
	SaveCommand(cmd domain.Command) error
	DeleteCommand(name string) error
	LoadCommands() ([]domain.Command, error)
	SaveApprovedUsers(users []string) error
	LoadApprovedUsers() ([]string, error)
}

type IHistoryRepository interface {
	Store(ctx context.Context, n domain.Notification) error
	List(cursor *string) ([]domain.Notification, *string, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Notification, error)
}

type IOperatorRepository interface {
	CreateOperator(name, hashedPassword string) error
	GetOperator(name string) (domain.Operator, error)
}
