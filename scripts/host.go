// Package scripts runs user Go scripts with yaegi.
// A script is a single .go file that may declare
//
//	func OnLoad()
//	func OnMessage(user, message string)
//
// and import "chatnotifier" to reach the notifier, the audio player and the logger.
package scripts

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

type Bindings struct {
	Notifier contract.INotifier
	Player   contract.IPlayer
	SoundDir string
}

type script struct {
	name      string
	onLoad    func()
	onMessage func(user, message string)
}

// Host is an EventSink fed with MessageAuthorized events.
type Host struct {
	log      *slog.Logger
	dir      string
	bindings Bindings

	mu      sync.Mutex
	scripts []script
}

func NewHost(log *slog.Logger, dir string, bindings Bindings) *Host {
	return &Host{log: log, dir: dir, bindings: bindings}
}

// Reload drops every loaded script and reads the directory again.
// Broken scripts are skipped, their errors are joined in the result.
func (h *Host) Reload() (int, error) {
	entries, err := os.ReadDir(h.dir)
	if os.IsNotExist(err) {
		entries = nil
	} else if err != nil {
		return 0, err
	}

	var loaded []script
	var failures []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			continue
		}
		s, err := h.load(filepath.Join(h.dir, name))
		if err != nil {
			h.log.Warn("Unable to load script", "script", name, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %s", name, err))
			continue
		}
		loaded = append(loaded, s)
	}
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].name < loaded[j].name })

	for _, s := range loaded {
		if s.onLoad == nil {
			continue
		}
		if err := h.call(s, s.onLoad); err != nil {
			h.log.Warn("Script OnLoad failed", "script", s.name, "error", err)
		}
	}

	h.mu.Lock()
	h.scripts = loaded
	h.mu.Unlock()
	h.log.Info("Scripts loaded", "count", len(loaded), "dir", h.dir)

	if len(failures) > 0 {
		return len(loaded), fmt.Errorf("%w: %s", errors.ErrParse, strings.Join(failures, "; "))
	}
	return len(loaded), nil
}

func (h *Host) Scripts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return lo.Map(h.scripts, func(s script, _ int) string { return s.name })
}

func (h *Host) Consume(ctx context.Context, e event.Event) error {
	if e.Type != event.MessageAuthorizedType {
		return nil
	}
	payload, ok := e.Payload.(event.MessageAuthorized)
	if !ok {
		return fmt.Errorf("%w: %T", errors.ErrInvalidPayload, e.Payload)
	}

	h.mu.Lock()
	scripts := h.scripts
	h.mu.Unlock()

	var firstErr error
	for _, s := range scripts {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if s.onMessage == nil {
			continue
		}
		err := h.call(s, func() { s.onMessage(payload.Message.User, payload.Message.Message) })
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *Host) call(s script, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", errors.ErrScriptPanic, s.name, r)
		}
	}()
	fn()
	return nil
}

func (h *Host) load(path string) (script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return script{}, err
	}
	file, err := parser.ParseFile(token.NewFileSet(), path, src, parser.PackageClauseOnly)
	if err != nil {
		return script{}, err
	}
	pkg := file.Name.Name
	name := strings.TrimSuffix(filepath.Base(path), ".go")

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return script{}, err
	}
	if err := i.Use(h.exports(name)); err != nil {
		return script{}, err
	}
	if _, err := i.Eval(string(src)); err != nil {
		return script{}, err
	}

	s := script{name: name}
	if v, err := i.Eval(symbol(pkg, "OnLoad")); err == nil {
		if fn, ok := v.Interface().(func()); ok {
			s.onLoad = fn
		}
	}
	if v, err := i.Eval(symbol(pkg, "OnMessage")); err == nil {
		if fn, ok := v.Interface().(func(string, string)); ok {
			s.onMessage = fn
		}
	}
	return s, nil
}

// symbol resolves a top level name, main is the default scope of the interpreter
func symbol(pkg, name string) string {
	if pkg == "main" {
		return name
	}
	return pkg + "." + name
}

func (h *Host) exports(name string) interp.Exports {
	launch := func(text string) {
		if h.bindings.Notifier == nil {
			return
		}
		n := domain.NewNotification(domain.KindCustom, text)
		n.Command = "script:" + name
		h.bindings.Notifier.Launch(n)
	}
	playSound := func(sound string) error {
		if h.bindings.Player == nil {
			return errors.ErrNotFound
		}
		return h.bindings.Player.PlaySound(sound)
	}
	speak := func(user, text string) error {
		if h.bindings.Player == nil {
			return errors.ErrNotFound
		}
		return h.bindings.Player.Speak(user, text)
	}
	logf := func(format string, args ...any) {
		h.log.Info(fmt.Sprintf(format, args...), "script", name)
	}
	soundAssetsPath := func() string { return h.bindings.SoundDir }

	return interp.Exports{
		"chatnotifier/chatnotifier": {
			"Launch":          reflect.ValueOf(launch),
			"PlaySound":       reflect.ValueOf(playSound),
			"Speak":           reflect.ValueOf(speak),
			"Logf":            reflect.ValueOf(logf),
			"SoundAssetsPath": reflect.ValueOf(soundAssetsPath),
		},
	}
}
