package sink

import (
	"chat-notifier/auth"
	"chat-notifier/errors"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"os/exec"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"
)

const (
	fallbackLanguage = "en"
	voicePlaceholder = "{voice}"
)

// Runner executes one external command until it exits or ctx is canceled.
type Runner func(ctx context.Context, args []string) error

// NewExecRunner runs args with os/exec. Program output is forwarded to log.
func NewExecRunner(log *slog.Logger) Runner {
	return func(ctx context.Context, args []string) error {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		setPlatformSpecificAttrs(cmd)
		cmd.Stdout = &playerLogWriter{log: log, program: args[0]}
		cmd.Stderr = &playerLogWriter{log: log, program: args[0], isError: true}
		return cmd.Run()
	}
}

// Audio plays sound files and reads text out loud through external programs.
// Playback runs in the background, StopAll cuts every running program.
type Audio struct {
	mu        sync.Mutex
	log       *slog.Logger
	run       Runner
	playerCmd []string
	ttsCmd    []string
	variants  []string
	sounds    map[string]string
	voices    map[string]string // folded user -> voice variant
	running   map[uint64]context.CancelFunc
	nextID    uint64
}

// NewAudio builds the player. playerCmd receives the file path as last
// argument. ttsCmd receives the text as last argument, "{voice}" in it is
// replaced with "<language>+<variant>", the variant being drawn once per user.
func NewAudio(log *slog.Logger, run Runner, playerCmd, ttsCmd, variants []string,
	sounds map[string]string) *Audio {
	if run == nil {
		run = NewExecRunner(log)
	}
	return &Audio{
		log:       log,
		run:       run,
		playerCmd: playerCmd,
		ttsCmd:    ttsCmd,
		variants:  variants,
		sounds:    maps.Clone(sounds),
		voices:    make(map[string]string),
		running:   make(map[uint64]context.CancelFunc),
	}
}

// SetSounds replaces the known assets, after a new discovery.
func (a *Audio) SetSounds(sounds map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sounds = maps.Clone(sounds)
}

func (a *Audio) Sounds() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(a.sounds))
	for name := range a.sounds {
		names = append(names, name)
	}
	return names
}

func (a *Audio) PlaySound(name string) error {
	if len(a.playerCmd) == 0 {
		return errors.ErrNoPlayer
	}
	a.mu.Lock()
	path, ok := a.sounds[strings.ToLower(name)]
	a.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: sound %s", errors.ErrNotFound, name)
	}
	args := append(append([]string(nil), a.playerCmd...), path)
	a.start("sound", args)
	return nil
}

func (a *Audio) Speak(user, text string) error {
	if len(a.ttsCmd) == 0 {
		return errors.ErrNoSpeechEngine
	}
	voice := Language(text) + a.variantFor(user)
	args := make([]string, 0, len(a.ttsCmd)+1)
	for _, arg := range a.ttsCmd {
		args = append(args, strings.ReplaceAll(arg, voicePlaceholder, voice))
	}
	args = append(args, text)
	a.start("speech", args)
	return nil
}

// StopAll stops every sound and speech still playing.
func (a *Audio) StopAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for id, cancel := range a.running {
		cancel()
		delete(a.running, id)
	}
}

// Playing counts the programs still running.
func (a *Audio) Playing() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.running)
}

func (a *Audio) start(kind string, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.running[id] = cancel
	a.mu.Unlock()

	go func() {
		defer func() {
			a.mu.Lock()
			delete(a.running, id)
			a.mu.Unlock()
			cancel()
		}()
		if err := a.run(ctx, args); err != nil && ctx.Err() == nil {
			a.log.Warn("Audio program failed", "kind", kind, "program", args[0], "error", err)
		}
	}()
}

// variantFor draws a voice variant the first time a user speaks and keeps it.
func (a *Audio) variantFor(user string) string {
	if len(a.variants) == 0 {
		return ""
	}
	key := auth.Fold(user)
	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.voices[key]; ok {
		return v
	}
	v := "+" + a.variants[rand.IntN(len(a.variants))]
	a.voices[key] = v
	return v
}

// Language guesses the ISO 639-1 code of text, English when unsure.
func Language(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return fallbackLanguage
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return fallbackLanguage
}
