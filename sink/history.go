package sink

import (
	"chat-notifier/contract"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"context"
)

// History persists every launched notification.
type History struct {
	repository contract.IHistoryRepository
}

func NewHistory(repository contract.IHistoryRepository) *History {
	return &History{repository: repository}
}

func (h *History) Consume(ctx context.Context, e event.Event) error {
	if e.Type != event.NotificationType {
		return nil
	}
	payload, ok := e.Payload.(event.NotificationLaunched)
	if !ok {
		return errors.ErrInvalidPayload
	}
	return h.repository.Store(ctx, payload.Notification)
}
