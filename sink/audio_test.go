package sink

import (
	"chat-notifier/errors"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// blockingRunner records the commands and plays until canceled.
type blockingRunner struct {
	mu   sync.Mutex
	args [][]string
}

func (r *blockingRunner) run(ctx context.Context, args []string) error {
	r.mu.Lock()
	r.args = append(r.args, args)
	r.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func (r *blockingRunner) calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.args...)
}

func newTestAudio(runner *blockingRunner) *Audio {
	return NewAudio(logs.GetLoggerFromLevel(slog.LevelDebug), runner.run,
		[]string{"ffplay", "-nodisp", "-autoexit"},
		[]string{"espeak-ng", "-v", "{voice}"},
		[]string{"f2"},
		map[string]string{"ding": "/sounds/ding.wav"})
}

func TestAudio_PlaySound(t *testing.T) {
	req := require.New(t)
	runner := &blockingRunner{}
	audio := newTestAudio(runner)

	// When a known sound is played, case ignored
	req.NoError(audio.PlaySound("DING"))

	// Then the player runs in the background with the file path
	req.Eventually(func() bool { return len(runner.calls()) == 1 }, time.Second, 5*time.Millisecond)
	req.Equal([]string{"ffplay", "-nodisp", "-autoexit", "/sounds/ding.wav"}, runner.calls()[0])
	req.Equal(1, audio.Playing())

	// And an unknown sound is refused
	req.ErrorIs(audio.PlaySound("amogus"), errors.ErrNotFound)
}

func TestAudio_StopAll(t *testing.T) {
	req := require.New(t)
	runner := &blockingRunner{}
	audio := newTestAudio(runner)
	req.NoError(audio.PlaySound("ding"))
	req.NoError(audio.PlaySound("ding"))
	req.Eventually(func() bool { return len(runner.calls()) == 2 }, time.Second, 5*time.Millisecond)

	audio.StopAll()

	req.Eventually(func() bool { return audio.Playing() == 0 }, time.Second, 5*time.Millisecond)
}

func TestAudio_Speak_Keeps_Voice_Per_User(t *testing.T) {
	req := require.New(t)
	runner := &blockingRunner{}
	audio := newTestAudio(runner)

	req.NoError(audio.Speak("Ann", "hello there, how are you doing today my friend"))
	req.NoError(audio.Speak("ann", "still me speaking in english with the same voice"))
	req.Eventually(func() bool { return len(runner.calls()) == 2 }, time.Second, 5*time.Millisecond)

	for _, call := range runner.calls() {
		req.Equal("espeak-ng", call[0])
		req.Equal("en+f2", call[2])
		req.True(strings.Contains(call[3], " "))
	}
	audio.StopAll()
}

func TestAudio_Without_Programs(t *testing.T) {
	req := require.New(t)
	runner := &blockingRunner{}
	audio := NewAudio(logs.GetLoggerFromLevel(slog.LevelDebug), runner.run, nil, nil, nil,
		map[string]string{"ding": "/sounds/ding.wav"})

	// Given no player nor speech engine configured
	// Then both are reported as missing, not as a bad file
	req.ErrorIs(audio.PlaySound("ding"), errors.ErrNoPlayer)
	req.ErrorIs(audio.Speak("ann", "hello"), errors.ErrNoSpeechEngine)
	req.Empty(runner.calls())
}

func TestAudio_SetSounds(t *testing.T) {
	req := require.New(t)
	audio := newTestAudio(&blockingRunner{})

	audio.SetSounds(map[string]string{"amogus": "/sounds/amogus.wav"})

	req.Equal([]string{"amogus"}, audio.Sounds())
	req.ErrorIs(audio.PlaySound("ding"), errors.ErrNotFound)
}

func TestLanguage(t *testing.T) {
	req := require.New(t)
	req.Equal("fr", Language("Bonjour à tous, je suis très content de vous voir ce soir sur le stream"))
	req.Equal("en", Language("ok"))
}

func TestExecRunner(t *testing.T) {
	req := require.New(t)
	run := NewExecRunner(logs.GetLoggerFromLevel(slog.LevelDebug))

	// A program that exits
	req.NoError(run(context.Background(), []string{"sh", "-c", "echo playing; echo oops 1>&2"}))

	// A program stopped through its context
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req.Error(run(ctx, []string{"sleep", "5"}))
}

func TestPlayerLogWriter_Swallows_Blank_Lines(t *testing.T) {
	req := require.New(t)
	w := &playerLogWriter{log: logs.GetLoggerFromLevel(slog.LevelDebug), program: "ffplay"}
	n, err := w.Write([]byte("\r\n"))
	req.NoError(err)
	req.Equal(2, n)
	n, err = w.Write([]byte("frame 1\n"))
	req.NoError(err)
	req.Equal(8, n)
}
