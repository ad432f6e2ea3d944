package worker

import (
	"context"
	"sync"
	"time"

	"github.com/guiate/guiate/internal/logging"
	"github.com/guiate/guiate/internal/queue"
	"github.com/guiate/guiate/internal/storage"
	"github.com/guiate/guiate/pkg/core"
)

// DefaultFlushInterval is how often the drain loop empties the queue.
const DefaultFlushInterval = 5 * time.Second

// MetricsWriter receives drained guess events for metrics export.
// The InfluxDB manager satisfies it; it is nil when metrics are disabled.
type MetricsWriter interface {
	WriteGuessEvent(ctx context.Context, e *core.GuessEvent) error
}

// Dependencies holds all dependencies for the worker manager
type Dependencies struct {
	LogManager *logging.SlogManager
	Metrics    MetricsWriter
}

// Manager drains queued guess events to storage and metrics on an
// interval so request handlers never wait on either backend.
type Manager struct {
	deps    Dependencies
	backend storage.Backend
	events  *queue.Queue[core.GuessEvent]

	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}

	mu            sync.Mutex
	lastDrainTime time.Duration
}

// NewManager creates a new worker manager
func NewManager(deps Dependencies, backend storage.Backend, events *queue.Queue[core.GuessEvent]) *Manager {
	return &Manager{
		deps:     deps,
		backend:  backend,
		events:   events,
		interval: DefaultFlushInterval,
	}
}

// SetInterval overrides the drain interval. Must be called before Start.
func (m *Manager) SetInterval(d time.Duration) {
	if d > 0 {
		m.interval = d
	}
}

// Start launches the drain loop. It runs until the context is cancelled
// or Stop is called, then drains once more so no events are lost.
func (m *Manager) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.Drain(context.Background())
				return
			case <-ticker.C:
				m.Drain(ctx)
			}
		}
	}()
}

// Stop cancels the drain loop and waits for the final drain to finish.
func (m *Manager) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// Drain empties the queue, writing each event to storage and metrics.
// Returns the number of events processed.
func (m *Manager) Drain(ctx context.Context) int {
	events := m.events.GetAndEmpty()
	if len(events) == 0 {
		return 0
	}

	start := time.Now()
	logger := m.deps.LogManager.Logger()

	for i := range events {
		e := &events[i]
		if err := m.backend.RecordGuessEvent(e); err != nil {
			logger.Error("Failed to record guess event", "error", err, "game", e.Game, "userID", e.UserID)
		}
		if m.deps.Metrics != nil {
			if err := m.deps.Metrics.WriteGuessEvent(ctx, e); err != nil {
				logger.Warn("Failed to write guess metric", "error", err)
			}
		}
	}

	elapsed := time.Since(start)
	m.mu.Lock()
	m.lastDrainTime = elapsed
	m.mu.Unlock()

	logger.Debug("Drained guess events", "count", len(events), "elapsed", elapsed)
	return len(events)
}

// LastDrainDuration returns the duration of the most recent drain cycle.
func (m *Manager) LastDrainDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDrainTime
}
