package workers

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"context"
	"log/slog"
)

// TransportWorker pumps chat messages from the source into the pipeline.
// deliver must not block, the source keeps reading the socket meanwhile.
type TransportWorker struct {
	log     *slog.Logger
	source  contract.IChatSource
	deliver func(domain.ChatMessage)
}

func NewTransportWorker(log *slog.Logger, source contract.IChatSource,
	deliver func(domain.ChatMessage)) *TransportWorker {
	return &TransportWorker{log: log, source: source, deliver: deliver}
}

func (w *TransportWorker) Run(ctx context.Context) error {
	w.log.Info("Starting chat transport", "channel", w.source.Channel())
	err := w.source.Run(ctx, w.deliver)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
