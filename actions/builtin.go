// Package actions holds the built-in command actions.
// Actions only prepare a notification and hand it to the sinks, which do the
// slow work on their own goroutines.
package actions

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/keyword"
	"chat-notifier/runtime"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

const TestNotificationText = "Test notification ahoy!"

// SoundOption names the asset played by the sound action.
const SoundOption = "sound"

var (
	// eggWords play a sound when found in a custom message. Only the first one plays.
	eggWords = []string{"tutturuu", "ding", "amogus"}
	// artWords append ascii art to a custom message, by priority.
	artWords = []string{"amogus", "awoo", "nya"}
)

// DefaultCommands is the table installed on first start.
func DefaultCommands() []domain.Command {
	return []domain.Command{
		{Name: "notify", CallString: "cc", Action: domain.ActionNotify},
		{Name: "custom", CallString: "ccc", Action: domain.ActionCustom},
	}
}

type Builtins struct {
	log      *slog.Logger
	notifier contract.INotifier
	player   contract.IPlayer
	phrases  []string
	art      map[string]string
	eggs     *keyword.Matcher
	arts     *keyword.Matcher
}

func NewBuiltins(log *slog.Logger, notifier contract.INotifier, player contract.IPlayer,
	assets *runtime.Assets) (*Builtins, error) {
	if len(assets.Phrases) == 0 {
		return nil, fmt.Errorf("no notification phrase loaded")
	}
	eggs, err := keyword.NewMatcher(eggWords)
	if err != nil {
		return nil, err
	}
	arts, err := keyword.NewMatcher(artWords)
	if err != nil {
		return nil, err
	}
	return &Builtins{
		log:      log,
		notifier: notifier,
		player:   player,
		phrases:  assets.Phrases,
		art:      assets.Art,
		eggs:     eggs,
		arts:     arts,
	}, nil
}

// Register binds every built-in handle.
func (b *Builtins) Register(registry *runtime.ActionRegistry) error {
	for handle, action := range map[domain.ActionHandle]domain.Action{
		domain.ActionNotify: b.Notify,
		domain.ActionCustom: b.Custom,
		domain.ActionSpeak:  b.Speak,
		domain.ActionSound:  b.Sound,
	} {
		if err := registry.Register(handle, action); err != nil {
			return err
		}
	}
	return nil
}

// Notify shows a random phrase asking to look at the chat.
func (b *Builtins) Notify(_ context.Context, inv domain.Invocation) error {
	n := domain.NewNotification(domain.KindPhrase, b.phrases[rand.IntN(len(b.phrases))])
	b.launch(n, inv)
	return nil
}

// Custom shows the payload itself. An easter-egg word plays its sound and an
// art word appends its ascii art.
func (b *Builtins) Custom(_ context.Context, inv domain.Invocation) error {
	n := domain.NewNotification(domain.KindCustom, inv.Payload)

	if word, ok := b.eggs.First(inv.Payload); ok {
		if err := b.player.PlaySound(word); err != nil {
			b.log.Debug("Easter egg sound unavailable", "sound", word, "error", err)
		} else {
			n.Sound = word
		}
	}
	if word, ok := b.arts.First(inv.Payload); ok {
		n.Text += b.art[word]
	}

	b.launch(n, inv)
	return nil
}

// Speak reads the payload out loud with the voice of the author.
func (b *Builtins) Speak(_ context.Context, inv domain.Invocation) error {
	text := strings.TrimSpace(inv.Payload)
	if text == "" {
		return nil
	}
	if err := b.player.Speak(inv.User, text); err != nil {
		return err
	}
	n := domain.NewNotification(domain.KindSpeech, text)
	n.Speak = true
	b.launch(n, inv)
	return nil
}

// Sound plays the asset configured on the command, or the one named in the payload.
func (b *Builtins) Sound(_ context.Context, inv domain.Invocation) error {
	name := inv.Command.Options[SoundOption]
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(inv.Payload))
	}
	if name == "" {
		return nil
	}
	if err := b.player.PlaySound(name); err != nil {
		return err
	}
	n := domain.NewNotification(domain.KindSound, name)
	n.Sound = name
	b.launch(n, inv)
	return nil
}

// TestNotification is launched from the control surface to check the overlay.
func (b *Builtins) TestNotification() domain.Notification {
	n := domain.NewNotification(domain.KindTest, TestNotificationText)
	b.notifier.Launch(n)
	return n
}

func (b *Builtins) launch(n domain.Notification, inv domain.Invocation) {
	n.Author = inv.User
	n.Command = inv.Command.Name
	b.notifier.Launch(n)
}
