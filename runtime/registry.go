package runtime

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"slices"
	"sync"
)

// ActionRegistry resolves the opaque handle stored in a Command into the code
// that runs when the command fires.
type ActionRegistry struct {
	mu      sync.RWMutex
	actions map[domain.ActionHandle]domain.Action
}

func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make(map[domain.ActionHandle]domain.Action)}
}

// Register binds an action to a handle. A handle can only be bound once.
func (r *ActionRegistry) Register(handle domain.ActionHandle, action domain.Action) error {
	if action == nil {
		return fmt.Errorf("%w: nil action for %s", errors.ErrUnknownAction, handle)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actions[handle]; ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateName, handle)
	}
	r.actions[handle] = action
	return nil
}

func (r *ActionRegistry) Resolve(handle domain.ActionHandle) (domain.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	action, ok := r.actions[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownAction, handle)
	}
	return action, nil
}

// Handles lists the registered handles, sorted.
func (r *ActionRegistry) Handles() []domain.ActionHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.ActionHandle, 0, len(r.actions))
	for h := range r.actions {
		res = append(res, h)
	}
	slices.Sort(res)
	return res
}
