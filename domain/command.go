package domain

import (
	"context"
	"time"
)

// ActionHandle names an action registered in the action registry.
// Commands carry the handle rather than a closure so the table stays
// introspectable and can be persisted.
type ActionHandle string

const (
	ActionNotify ActionHandle = "notify"
	ActionCustom ActionHandle = "custom"
	ActionSpeak  ActionHandle = "speak"
	ActionSound  ActionHandle = "sound"
)

// Action performs the effect bound to a command. It must return quickly and
// hand long work over to a sink.
type Action func(ctx context.Context, inv Invocation) error

// Command is one trigger registration.
// CallString is typed in chat after the prefix. An empty CallString keeps the
// command registered but never matches. Options are handed to the action
// untouched (the sound action reads "sound" from it).
type Command struct {
	Name       string            `json:"name" validate:"required,max=64"`
	CallString string            `json:"call_string" validate:"max=64"`
	Action     ActionHandle      `json:"action" validate:"required"`
	Options    map[string]string `json:"options,omitempty"`
}

// FullCallString is the string a user has to type, prefix included.
func (c Command) FullCallString() string {
	return string(CommandPrefix) + c.CallString
}

// Invocation is the resolved result of a dispatch.
type Invocation struct {
	Command    Command
	User       string
	Channel    string
	Payload    string
	ReceivedAt time.Time
}
