package auth

import (
	"chat-notifier/errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns the lower-cased form used to compare usernames.
// Lowering keeps one rune for one rune, so "straße" never equals "strasse".
// A Caser is stateful, one is built per call.
func Fold(user string) string {
	return cases.Lower(language.Und).String(user)
}

// IsAuthorized reports whether user may trigger commands.
// An empty list means everyone is allowed. Otherwise the user must equal one of
// the approved entries, ignoring case.
func IsAuthorized(user string, approved []string) bool {
	if len(approved) == 0 {
		return true
	}
	folded := Fold(user)
	return slices.ContainsFunc(approved, func(a string) bool {
		return Fold(a) == folded
	})
}

// ApprovedUsers is the mutable allow-list shared by the dispatch pipeline and
// the control surface.
type ApprovedUsers struct {
	mu    sync.RWMutex
	users []string
}

func NewApprovedUsers(users ...string) *ApprovedUsers {
	a := &ApprovedUsers{}
	a.Replace(users)
	return a
}

func (a *ApprovedUsers) Add(user string) error {
	if err := ValidateUsername(user); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.indexOf(user) >= 0 {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateName, user)
	}
	a.users = append(a.users, user)
	return nil
}

func (a *ApprovedUsers) Remove(user string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.indexOf(user)
	if i < 0 {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, user)
	}
	a.users = slices.Delete(a.users, i, i+1)
	return nil
}

// List returns a copy in insertion order.
func (a *ApprovedUsers) List() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.users)
}

func (a *ApprovedUsers) IsAuthorized(user string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return IsAuthorized(user, a.users)
}

// Replace swaps the whole list, dropping case-insensitive duplicates.
func (a *ApprovedUsers) Replace(users []string) {
	next := make([]string, 0, len(users))
	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		f := Fold(u)
		if _, ok := seen[f]; ok || u == "" {
			continue
		}
		seen[f] = struct{}{}
		next = append(next, u)
	}
	a.mu.Lock()
	a.users = next
	a.mu.Unlock()
}

func (a *ApprovedUsers) indexOf(user string) int {
	folded := Fold(user)
	return slices.IndexFunc(a.users, func(u string) bool {
		return Fold(u) == folded
	})
}
