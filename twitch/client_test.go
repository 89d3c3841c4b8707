package twitch

import (
	"bytes"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// fakeTwitch records the handshake, pings the client and then sends two chat lines.
func fakeTwitch(handshake chan<- string, pong chan<- string) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for i := 0; i < 3; i++ {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			handshake <- string(data)
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte("PING :tmi.twitch.tv\r\n"))
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		pong <- string(data)
		_ = conn.WriteMessage(websocket.TextMessage, []byte(
			":ann!ann@ann.tmi.twitch.tv PRIVMSG #stream :!cc hello\r\n"+
				":bob!bob@bob.tmi.twitch.tv PRIVMSG #stream :hi\r\n"))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestClient_Handshake_Ping_And_Delivery(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	handshake := make(chan string, 3)
	pong := make(chan string, 1)
	server := fakeTwitch(handshake, pong)
	defer server.Close()

	var mu sync.Mutex
	var statuses []bool
	client, err := NewClient(log, Config{
		Endpoint: "ws" + strings.TrimPrefix(server.URL, "http"),
		Token:    "oauth:secret",
		User:     "bot",
		Channel:  "#Stream",
		Backoff:  10 * time.Millisecond,
	}, WithStatusHook(func(channel string, connected bool) {
		mu.Lock()
		defer mu.Unlock()
		req.Equal("stream", channel)
		statuses = append(statuses, connected)
	}))
	req.NoError(err)

	// Given a running client
	ctx, cancel := context.WithCancel(context.Background())
	messages := make(chan domain.ChatMessage, 2)
	done := make(chan error, 1)
	go func() { done <- client.Run(ctx, func(m domain.ChatMessage) { messages <- m }) }()

	// Then the handshake is sent in order
	req.Equal("PASS oauth:secret\r\n", <-handshake)
	req.Equal("NICK bot\r\n", <-handshake)
	req.Equal("JOIN #stream\r\n", <-handshake)

	// And the ping is answered
	select {
	case p := <-pong:
		req.Equal("PONG :tmi.twitch.tv\r\n", p)
	case <-time.After(2 * time.Second):
		req.Fail("no pong")
	}

	// And both chat lines of the frame are delivered
	for _, expected := range []domain.ChatMessage{
		{User: "ann", Channel: "stream", Message: "!cc hello"},
		{User: "bob", Channel: "stream", Message: "hi"},
	} {
		select {
		case m := <-messages:
			req.Equal(expected, m)
		case <-time.After(2 * time.Second):
			req.Fail("message not delivered")
		}
	}
	req.True(client.Connected())

	// When the context is cancelled
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("client did not stop")
	}

	// Then the client reports the disconnection
	req.False(client.Connected())
	mu.Lock()
	defer mu.Unlock()
	req.Equal([]bool{true, false}, statuses)
}

func TestNewClient_Missing_Credentials(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	_, err := NewClient(log, Config{User: "bot", Channel: "stream"})
	req.ErrorIs(err, errors.ErrMissingCredentials)

	client, err := NewClient(log, Config{Token: "t", User: "bot", Channel: "stream"})
	req.NoError(err)
	req.Equal("stream", client.Channel())
	req.False(client.Connected())
	req.ErrorIs(client.Close(), errors.ErrNotConnected)
}

// syncBuffer is a log output safe to read while the client writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// welcomingTwitch greets every connection with a server notice and one chat line.
func welcomingTwitch(joined chan<- struct{}) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for i := 0; i < 3; i++ {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
		joined <- struct{}{}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(
			":tmi.twitch.tv 001 bot :Welcome, GLHF!\r\n"+
				":ann!ann@ann.tmi.twitch.tv PRIVMSG #stream :!cc\r\n"))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestClient_Disconnect_And_Connect(t *testing.T) {
	req := require.New(t)
	out := &syncBuffer{}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	joined := make(chan struct{}, 4)
	server := welcomingTwitch(joined)
	defer server.Close()

	client, err := NewClient(log, Config{
		Endpoint: "ws" + strings.TrimPrefix(server.URL, "http"),
		Token:    "secret",
		User:     "bot",
		Channel:  "stream",
		Backoff:  10 * time.Millisecond,
	})
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	messages := make(chan domain.ChatMessage, 4)
	done := make(chan error, 1)
	go func() { done <- client.Run(ctx, func(m domain.ChatMessage) { messages <- m }) }()

	// Given a joined channel
	select {
	case <-joined:
	case <-time.After(2 * time.Second):
		req.Fail("client never joined")
	}
	select {
	case m := <-messages:
		req.Equal("!cc", m.Message)
	case <-time.After(2 * time.Second):
		req.Fail("message not delivered")
	}
	req.Eventually(client.Connected, time.Second, 5*time.Millisecond)
	req.ErrorIs(client.Connect(), errors.ErrAlreadyConnected)

	// Then the server notice was skipped with a debug log
	req.Contains(out.String(), "Ignoring non chat line")

	// When the client is asked to leave
	req.NoError(client.Disconnect())

	// Then it stays away
	req.Eventually(func() bool { return !client.Connected() }, time.Second, 5*time.Millisecond)
	req.ErrorIs(client.Disconnect(), errors.ErrNotConnected)
	select {
	case <-joined:
		req.Fail("client reconnected on its own")
	case <-time.After(100 * time.Millisecond):
	}

	// When it is asked to come back
	req.NoError(client.Connect())

	// Then it joins again
	select {
	case <-joined:
	case <-time.After(2 * time.Second):
		req.Fail("client never joined again")
	}
	req.Eventually(client.Connected, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("client did not stop")
	}
}
