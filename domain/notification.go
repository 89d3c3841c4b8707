package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindPhrase NotificationKind = "PHRASE"
	KindCustom NotificationKind = "CUSTOM"
	KindSpeech NotificationKind = "SPEECH"
	KindSound  NotificationKind = "SOUND"
	KindTest   NotificationKind = "TEST"
)

// Notification is what a sink receives once an action fired.
// Text is rendered on screen, Sound names an asset to play and Speak asks
// for the text to be read out loud.
type Notification struct {
	ID      uuid.UUID
	Kind    NotificationKind
	Text    string
	Sound   string
	Speak   bool
	Author  string
	Command string
	At      time.Time
}

func NewNotification(kind NotificationKind, text string) Notification {
	return Notification{
		ID:   uuid.New(),
		Kind: kind,
		Text: text,
		At:   time.Now().UTC(),
	}
}
