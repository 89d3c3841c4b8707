package runtime

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"chat-notifier/mocks"
	"chat-notifier/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) types() []event.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []event.Type
	for _, e := range s.events {
		res = append(res, e.Type)
	}
	return res
}

func newTestOrchestrator(t *testing.T, bufferSize int) (*Orchestrator, *recorder) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rec := &recorder{}
	actions := NewActionRegistry()
	require.NoError(t, actions.Register(domain.ActionNotify, rec.action))
	supervisor := workers.NewSupervisor(log)
	o := NewOrchestrator(log, supervisor, nil, nil, actions, bufferSize, time.Second, time.Second)
	return o, rec
}

func TestOrchestrator_OnMessage_Never_Blocks(t *testing.T) {
	req := require.New(t)
	o, _ := newTestOrchestrator(t, 1)

	// Given nobody consumes the inbound channel
	req.True(o.OnMessage(chat("ann", "!cc")))

	// When it is full, the next message is dropped right away
	done := make(chan bool)
	go func() { done <- o.OnMessage(chat("ann", "!cc")) }()

	select {
	case accepted := <-done:
		req.False(accepted)
	case <-time.After(time.Second):
		req.Fail("OnMessage blocked on a full channel")
	}
}

func TestOrchestrator_Pipeline(t *testing.T) {
	req := require.New(t)
	o, rec := newTestOrchestrator(t, 16)
	sink := &recordingSink{}
	o.Add(sink)
	req.NoError(o.Restore([]domain.Command{notifyCommand("notify", "cc")}, []string{"ann"}))

	done := make(chan struct{})
	go func() {
		_ = o.Start(context.Background())
		close(done)
	}()

	// When an approved and a stranger both type the command
	o.OnMessage(chat("mallory", "!cc"))
	o.OnMessage(chat("ANN", "!cc look"))

	// Then only the approved user triggers the action
	req.Eventually(func() bool { return len(rec.invocations()) == 1 }, 2*time.Second, 10*time.Millisecond)
	req.Equal("look", rec.invocations()[0].Payload)
	req.Eventually(func() bool {
		types := sink.types()
		return contains(types, event.UnauthorizedType) && contains(types, event.CommandDispatchedType)
	}, 2*time.Second, 10*time.Millisecond)

	// And stopping joins every worker
	o.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("orchestrator did not stop")
	}
}

func contains(types []event.Type, t event.Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func TestOrchestrator_Mutators(t *testing.T) {
	req := require.New(t)
	o, _ := newTestOrchestrator(t, 1)

	req.ErrorIs(o.AddCommand(domain.Command{Name: "x", CallString: "x", Action: "nope"}), errors.ErrUnknownAction)
	req.NoError(o.AddCommand(notifyCommand("notify", "cc")))
	req.ErrorIs(o.AddCommand(notifyCommand("notify", "dd")), errors.ErrDuplicateName)
	req.NoError(o.RenameCallString("notify", "dd"))
	req.Equal("dd", o.Commands()[0].CallString)
	req.NoError(o.RemoveCommand("notify"))
	req.ErrorIs(o.RemoveCommand("notify"), errors.ErrNotFound)

	req.NoError(o.AddApprovedUser("ann"))
	req.ErrorIs(o.AddApprovedUser("ANN"), errors.ErrDuplicateName)
	req.Equal([]string{"ann"}, o.ApprovedUsers())
	req.NoError(o.RemoveApprovedUser("ann"))
	req.Empty(o.ApprovedUsers())
}

func TestOrchestrator_Restore_From_Repository(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockICommandRepository(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	actions := NewActionRegistry()
	o := NewOrchestrator(log, workers.NewSupervisor(log), nil, repository, actions, 4, time.Second, time.Second)
	defaults := []domain.Command{notifyCommand("notify", "cc")}

	// Given nothing was persisted yet
	repository.EXPECT().LoadCommands().Return(nil, nil)
	repository.EXPECT().SaveCommand(defaults[0]).Return(nil)
	repository.EXPECT().LoadApprovedUsers().Return([]string{"ann"}, nil)

	// When restoring
	req.NoError(o.Restore(defaults, []string{"bob"}))

	// Then defaults are installed and persisted, users come from the store
	req.Equal(defaults, o.Commands())
	req.Equal([]string{"ann"}, o.ApprovedUsers())

	// And user mutations are written through
	repository.EXPECT().SaveApprovedUsers([]string{"ann", "carl"}).Return(nil)
	req.NoError(o.AddApprovedUser("carl"))
}

func TestOrchestrator_Connection_Status(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockIChatSource(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	o := NewOrchestrator(log, workers.NewSupervisor(log), source, nil, NewActionRegistry(), 4, time.Second, time.Second)

	source.EXPECT().Connected().Return(true)
	source.EXPECT().Channel().Return("stream")

	req.True(o.ConnectionStatus())
	req.Equal("stream", o.Channel())

	// Status changes are emitted once per transition
	o.ConnectionChanged("stream", true)
	o.ConnectionChanged("stream", true)
	req.Len(o.events, 1)
}

// controlledSource is a chat source that can also be paused.
type controlledSource struct {
	*mocks.MockIChatSource
	*mocks.MockIChatControl
}

func TestOrchestrator_Transport_Control(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	control := mocks.NewMockIChatControl(ctrl)
	source := controlledSource{MockIChatSource: mocks.NewMockIChatSource(ctrl), MockIChatControl: control}
	o := NewOrchestrator(log, workers.NewSupervisor(log), source, nil, NewActionRegistry(), 4, time.Second, time.Second)

	// Requests are forwarded to the transport
	control.EXPECT().Disconnect().Return(nil)
	control.EXPECT().Connect().Return(errors.ErrAlreadyConnected)
	req.NoError(o.DisconnectTransport())
	req.ErrorIs(o.ConnectTransport(), errors.ErrAlreadyConnected)

	// Without transport there is nothing to drive
	offline, _ := newTestOrchestrator(t, 1)
	req.ErrorIs(offline.ConnectTransport(), errors.ErrMissingCredentials)
	req.ErrorIs(offline.DisconnectTransport(), errors.ErrMissingCredentials)
}
