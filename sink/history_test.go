package sink

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"chat-notifier/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistory_Consume(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIHistoryRepository(ctrl)
	history := NewHistory(repository)
	n := domain.NewNotification(domain.KindPhrase, "Check the chat, nerd!")

	// Only launched notifications are stored
	repository.EXPECT().Store(gomock.Any(), n).Return(nil)

	req.NoError(history.Consume(context.Background(), event.New(event.NotificationType, event.NotificationLaunched{Notification: n})))
	req.NoError(history.Consume(context.Background(), event.New(event.MessageReceivedType, event.MessageReceived{})))
	req.ErrorIs(history.Consume(context.Background(), event.New(event.NotificationType, "garbage")), errors.ErrInvalidPayload)
}

func TestBroadcast_And_EventNotifier(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	first := mocks.NewMockINotifier(ctrl)
	var emitted []event.Event
	n := domain.NewNotification(domain.KindTest, "hi")

	first.EXPECT().Launch(n)
	broadcast := NewBroadcast(first, NewEventNotifier(func(e event.Event) { emitted = append(emitted, e) }))

	broadcast.Launch(n)

	req.Len(emitted, 1)
	req.Equal(event.NotificationType, emitted[0].Type)
	req.Equal(n, emitted[0].Payload.(event.NotificationLaunched).Notification)
}
