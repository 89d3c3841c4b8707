package observability

import (
	"chat-notifier/domain/event"
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats aggregates pipeline counters and process metrics for the control surface.
type Stats struct {
	Received      uint64            `json:"received"`
	Authorized    uint64            `json:"authorized"`
	Unauthorized  uint64            `json:"unauthorized"`
	Dispatched    uint64            `json:"dispatched"`
	ActionFailed  uint64            `json:"action_failed"`
	PerCommand    map[string]uint64 `json:"per_command"`
	QueueSize     int               `json:"queue_size"`
	QueueCapacity int               `json:"queue_capacity"`

	RSSBytes   uint64    `json:"rss_bytes"`
	CPUPercent float64   `json:"cpu_percent"`
	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	SampledAt  time.Time `json:"sampled_at"`
}

// QueueProbe reports the current usage of the inbound queue.
type QueueProbe func() (size, capacity int)

// MonitoringManager samples the process every interval and merges the samples
// with the live event counters on read.
type MonitoringManager struct {
	log      *slog.Logger
	counter  *event.Counter
	queue    QueueProbe
	interval time.Duration

	mu     sync.RWMutex
	latest Stats
}

func NewMonitoringManager(log *slog.Logger, counter *event.Counter, queue QueueProbe, interval time.Duration) *MonitoringManager {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &MonitoringManager{log: log, counter: counter, queue: queue, interval: interval}
}

// Run samples the process until ctx is done.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	mm.sample(p)
	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.sample(p)
		}
	}
}

func (mm *MonitoringManager) sample(p *process.Process) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latest.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latest.NumGC = m.NumGC
	mm.latest.SampledAt = time.Now().UTC()

	if memInfo, err := p.MemoryInfo(); err != nil {
		mm.log.Debug("Failed to read process memory", "error", err)
	} else {
		mm.latest.RSSBytes = memInfo.RSS
	}
	if cpu, err := p.CPUPercent(); err != nil {
		mm.log.Debug("Failed to read process cpu", "error", err)
	} else {
		mm.latest.CPUPercent = cpu
	}
}

func (mm *MonitoringManager) GetLatest() Stats {
	mm.mu.RLock()
	stats := mm.latest
	mm.mu.RUnlock()

	stats.PerCommand = make(map[string]uint64)
	if mm.counter != nil {
		for key, value := range mm.counter.Snapshot() {
			if name, ok := strings.CutPrefix(key, event.CommandKey("")); ok {
				stats.PerCommand[name] = value
			}
		}
		stats.Received = mm.counter.Get(string(event.MessageReceivedType))
		stats.Authorized = mm.counter.Get(string(event.MessageAuthorizedType))
		stats.Unauthorized = mm.counter.Get(string(event.UnauthorizedType))
		stats.Dispatched = mm.counter.Get(string(event.CommandDispatchedType))
		stats.ActionFailed = mm.counter.Get(string(event.ActionFailedType))
	}
	if mm.queue != nil {
		stats.QueueSize, stats.QueueCapacity = mm.queue()
	}
	return stats
}
