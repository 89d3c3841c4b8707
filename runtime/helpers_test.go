package runtime

import (
	"chat-notifier/domain"
	"context"
	"sync"
)

// recorder is an action keeping every invocation it receives.
type recorder struct {
	mu    sync.Mutex
	calls []domain.Invocation
}

func (r *recorder) action(_ context.Context, inv domain.Invocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, inv)
	return nil
}

func (r *recorder) invocations() []domain.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Invocation(nil), r.calls...)
}

func notifyCommand(name, callString string) domain.Command {
	return domain.Command{Name: name, CallString: callString, Action: domain.ActionNotify}
}

func chat(user, body string) domain.ChatMessage {
	return domain.ChatMessage{User: user, Channel: "stream", Message: body}
}
