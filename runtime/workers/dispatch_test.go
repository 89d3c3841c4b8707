package workers

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchWorker(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	authorizer := mocks.NewMockIAuthorizer(ctrl)
	dispatcher := mocks.NewMockIDispatcher(ctrl)
	inbound := make(chan domain.Delivery, 2)
	events := make(chan event.Event, 8)

	approved := domain.Delivery{Message: domain.ChatMessage{User: "ann", Message: "!cc"}, ReceivedAt: time.Now()}
	stranger := domain.Delivery{Message: domain.ChatMessage{User: "mallory", Message: "!cc"}, ReceivedAt: time.Now()}

	dispatched := make(chan struct{})
	authorizer.EXPECT().IsAuthorized("mallory").Return(false)
	authorizer.EXPECT().IsAuthorized("ann").Return(true)
	// Only the approved user reaches the dispatcher
	dispatcher.EXPECT().Dispatch(gomock.Any(), approved).
		DoAndReturn(func(context.Context, domain.Delivery) (domain.Invocation, bool) {
			close(dispatched)
			return domain.Invocation{}, true
		})

	inbound <- stranger
	inbound <- approved

	worker := NewDispatchWorker(log, inbound, events, authorizer, dispatcher)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() { stopped <- worker.Run(ctx) }()

	select {
	case <-dispatched:
	case <-time.After(time.Second):
		req.Fail("approved message never dispatched")
	}
	cancel()
	req.NoError(<-stopped)

	var types []event.Type
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	req.Equal([]event.Type{
		event.MessageReceivedType, event.UnauthorizedType,
		event.MessageReceivedType, event.MessageAuthorizedType,
	}, types)
}

func TestTransportWorker(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockIChatSource(ctrl)

	var delivered []domain.ChatMessage
	source.EXPECT().Channel().Return("stream")
	source.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, deliver func(domain.ChatMessage)) error {
			deliver(domain.ChatMessage{User: "ann", Channel: "stream", Message: "!cc"})
			return nil
		})

	worker := NewTransportWorker(log, source, func(msg domain.ChatMessage) {
		delivered = append(delivered, msg)
	})

	req.NoError(worker.Run(context.Background()))
	req.Len(delivered, 1)
	req.Equal("ann", delivered[0].User)
}
