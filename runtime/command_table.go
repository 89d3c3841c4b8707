package runtime

import (
	"chat-notifier/auth"
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
)

// CommandTable is the live set of registered commands.
// Every mutation holds the write lock for its whole duration, so a Snapshot
// taken by the dispatcher sees a mutation either entirely or not at all.
type CommandTable struct {
	mu         sync.RWMutex
	commands   []domain.Command // insertion order
	repository contract.ICommandRepository
}

func NewCommandTable() *CommandTable {
	return &CommandTable{}
}

// WithRepository writes every later mutation through to the repository.
func (t *CommandTable) WithRepository(repository contract.ICommandRepository) *CommandTable {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.repository = repository
	return t
}

func (t *CommandTable) Add(cmd domain.Command) error {
	if err := auth.ValidateCommand(cmd); err != nil {
		return err
	}
	cmd.Options = maps.Clone(cmd.Options)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexOf(cmd.Name) >= 0 {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateName, cmd.Name)
	}
	if err := t.save(cmd); err != nil {
		return err
	}
	t.commands = append(t.commands, cmd)
	return nil
}

func (t *CommandTable) Remove(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, name)
	}
	if t.repository != nil {
		if err := t.repository.DeleteCommand(name); err != nil {
			return err
		}
	}
	t.commands = slices.Delete(t.commands, i, i+1)
	return nil
}

// RenameCallString changes only the match string. Name, action and position
// in the listing are kept.
func (t *CommandTable) RenameCallString(name, callString string) error {
	if err := auth.ValidateCallString(callString); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, name)
	}
	updated := t.commands[i]
	updated.CallString = callString
	if err := t.save(updated); err != nil {
		return err
	}
	t.commands[i] = updated
	return nil
}

func (t *CommandTable) Get(name string) (domain.Command, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.indexOf(name)
	if i < 0 {
		return domain.Command{}, false
	}
	return clone(t.commands[i]), true
}

// List returns the commands in insertion order.
func (t *CommandTable) List() []domain.Command {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]domain.Command, len(t.commands))
	for i, c := range t.commands {
		res[i] = clone(c)
	}
	return res
}

// Snapshot returns the commands eligible for matching, in scan order:
// longest call string first, insertion order among equal lengths.
// Commands with an empty call string are left out.
func (t *CommandTable) Snapshot() []domain.Command {
	t.mu.RLock()
	res := make([]domain.Command, 0, len(t.commands))
	for _, c := range t.commands {
		if c.CallString != "" {
			res = append(res, clone(c))
		}
	}
	t.mu.RUnlock()

	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i].CallString) > len(res[j].CallString)
	})
	return res
}

// Replace swaps the whole content without touching the repository.
// Used when restoring a persisted table.
func (t *CommandTable) Replace(commands []domain.Command) error {
	next := make([]domain.Command, 0, len(commands))
	seen := make(map[string]struct{}, len(commands))
	for _, c := range commands {
		if err := auth.ValidateCommand(c); err != nil {
			return err
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: %s", errors.ErrDuplicateName, c.Name)
		}
		seen[c.Name] = struct{}{}
		next = append(next, clone(c))
	}
	t.mu.Lock()
	t.commands = next
	t.mu.Unlock()
	return nil
}

func (t *CommandTable) save(cmd domain.Command) error {
	if t.repository == nil {
		return nil
	}
	return t.repository.SaveCommand(cmd)
}

func (t *CommandTable) indexOf(name string) int {
	return slices.IndexFunc(t.commands, func(c domain.Command) bool {
		return c.Name == name
	})
}

func clone(c domain.Command) domain.Command {
	c.Options = maps.Clone(c.Options)
	return c
}
