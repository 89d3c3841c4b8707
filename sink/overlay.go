package sink

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	MinShowTime     = time.Second
	MaxShowTime     = 10 * time.Second
	DefaultShowTime = 5 * time.Second
)

// Presenter renders the notification currently on screen.
type Presenter interface {
	Present(n domain.Notification)
}

// Overlay is the notification window: it shows one notification at a time for
// ShowTime, in arrival order. Launch never blocks, bursts beyond the rate limit
// or the queue size are dropped.
type Overlay struct {
	mu         sync.RWMutex
	log        *slog.Logger
	queue      chan domain.Notification
	limiter    *rate.Limiter
	showTime   time.Duration
	current    *domain.Notification
	presenters []Presenter
}

// NewOverlay allows burst notifications at once, then one per interval.
func NewOverlay(log *slog.Logger, queueSize int, interval time.Duration, burst int,
	presenters ...Presenter) *Overlay {
	return &Overlay{
		log:        log,
		queue:      make(chan domain.Notification, queueSize),
		limiter:    rate.NewLimiter(rate.Every(interval), burst),
		showTime:   DefaultShowTime,
		presenters: presenters,
	}
}

func (o *Overlay) Launch(n domain.Notification) {
	if !o.limiter.Allow() {
		o.log.Debug("Notification rate limited", "kind", n.Kind, "author", n.Author)
		return
	}
	select {
	case o.queue <- n:
	default:
		o.log.Warn("Overlay queue full, dropping notification", "kind", n.Kind)
	}
}

// SetShowTime changes how long each notification stays visible.
func (o *Overlay) SetShowTime(d time.Duration) error {
	if d < MinShowTime || d > MaxShowTime {
		return errors.ErrInvalidShowTime
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.showTime = d
	return nil
}

func (o *Overlay) ShowTime() time.Duration {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.showTime
}

// Current returns the visible notification, if any.
func (o *Overlay) Current() (domain.Notification, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.current == nil {
		return domain.Notification{}, false
	}
	return *o.current, true
}

// Run is the presentation loop.
func (o *Overlay) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			o.hide()
			return nil
		case n := <-o.queue:
			o.show(n)
			timer := time.NewTimer(o.ShowTime())
			select {
			case <-ctx.Done():
				timer.Stop()
				o.hide()
				return nil
			case <-timer.C:
				o.hide()
			}
		}
	}
}

func (o *Overlay) show(n domain.Notification) {
	o.mu.Lock()
	o.current = &n
	o.mu.Unlock()
	for _, p := range o.presenters {
		p.Present(n)
	}
}

func (o *Overlay) hide() {
	o.mu.Lock()
	o.current = nil
	o.mu.Unlock()
}
