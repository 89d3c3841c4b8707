package twitch

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const DefaultEndpoint = "ws://irc-ws.chat.twitch.tv:80"

type Config struct {
	Endpoint string `validate:"required,url"`
	Token    string `validate:"required"`
	User     string `validate:"required"`
	Channel  string `validate:"required"`
	// Backoff is the minimum delay between two connection attempts
	Backoff time.Duration
}

// Client reads Twitch chat over IRC on a websocket.
// It implements contract.IChatSource.
type Client struct {
	log       *slog.Logger
	config    Config
	dialer    *websocket.Dialer
	limiter   *rate.Limiter
	connected atomic.Bool
	paused    atomic.Bool
	resume    chan struct{}
	onStatus  func(channel string, connected bool)

	mu   sync.Mutex
	conn *websocket.Conn
}

type Option func(*Client)

// WithStatusHook is called on every connection state change.
func WithStatusHook(fn func(channel string, connected bool)) Option {
	return func(c *Client) { c.onStatus = fn }
}

func WithDialer(d *websocket.Dialer) Option {
	return func(c *Client) { c.dialer = d }
}

func NewClient(log *slog.Logger, config Config, opts ...Option) (*Client, error) {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	config.Token = strings.TrimPrefix(config.Token, "oauth:")
	config.Channel = strings.ToLower(strings.TrimPrefix(config.Channel, "#"))
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrMissingCredentials, err)
	}
	if config.Backoff <= 0 {
		config.Backoff = 5 * time.Second
	}
	c := &Client{
		log:     log,
		config:  config,
		dialer:  websocket.DefaultDialer,
		limiter: rate.NewLimiter(rate.Every(config.Backoff), 1),
		resume:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Connected() bool { return c.connected.Load() }

func (c *Client) Channel() string { return c.config.Channel }

// Run connects and keeps reconnecting until ctx is done.
// After Disconnect it idles until Connect is called.
func (c *Client) Run(ctx context.Context, deliver func(domain.ChatMessage)) error {
	for {
		if c.paused.Load() {
			select {
			case <-ctx.Done():
				return nil
			case <-c.resume:
			}
			continue
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil
		}
		err := c.session(ctx, deliver)
		if ctx.Err() != nil {
			return nil
		}
		if c.paused.Load() {
			c.log.Info("Twitch disconnected on request", "channel", c.config.Channel)
			continue
		}
		c.log.Warn("Twitch connection lost", "channel", c.config.Channel, "error", err)
	}
}

// Disconnect ends the session and keeps Run idle until Connect.
func (c *Client) Disconnect() error {
	if !c.paused.CompareAndSwap(false, true) {
		return errors.ErrNotConnected
	}
	if err := c.Close(); err != nil && !errors.Is(err, errors.ErrNotConnected) {
		return err
	}
	return nil
}

// Connect resumes a client stopped by Disconnect.
func (c *Client) Connect() error {
	if !c.paused.CompareAndSwap(true, false) {
		return errors.ErrAlreadyConnected
	}
	select {
	case c.resume <- struct{}{}:
	default:
	}
	return nil
}

// Close ends the current session, Run reconnects unless its context is done.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return errors.ErrNotConnected
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return conn.Close()
}

func (c *Client) session(ctx context.Context, deliver func(domain.ChatMessage)) error {
	conn, _, err := c.dialer.DialContext(ctx, c.config.Endpoint, nil)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	if c.paused.Load() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		return conn.Close()
	}

	done := make(chan struct{})
	defer func() {
		close(done)
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
		c.setStatus(false)
	}()
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for _, line := range []string{
		"PASS oauth:" + c.config.Token,
		"NICK " + c.config.User,
		"JOIN #" + c.config.Channel,
	} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(line+"\r\n")); err != nil {
			return err
		}
	}
	c.setStatus(true)
	c.log.Info("Joined Twitch channel", "channel", c.config.Channel)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		for _, line := range SplitFrame(string(data)) {
			if strings.HasPrefix(line, "PING") {
				if err := conn.WriteMessage(websocket.TextMessage, []byte("PONG"+line[4:]+"\r\n")); err != nil {
					return err
				}
				continue
			}
			msg, err := ParseLine(line)
			if err != nil {
				c.log.Debug("Ignoring non chat line", "error", err)
				continue
			}
			deliver(msg)
		}
	}
}

func (c *Client) setStatus(connected bool) {
	if c.connected.Swap(connected) == connected {
		return
	}
	if c.onStatus != nil {
		c.onStatus(c.config.Channel, connected)
	}
}
