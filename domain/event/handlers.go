package event

import "sync"

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}

// Counter keeps one monotonic count per key.
type Counter struct {
	mu     sync.RWMutex
	counts map[string]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]uint64)}
}

func (c *Counter) Increment(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
}

func (c *Counter) Get(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[key]
}

// Snapshot copies the current counts.
func (c *Counter) Snapshot() map[string]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make(map[string]uint64, len(c.counts))
	for k, v := range c.counts {
		res[k] = v
	}
	return res
}
