package monitor

import (
	"sync"
	"time"

	"github.com/guiate/guiate/internal/cache"
	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/internal/logging"
	"github.com/guiate/guiate/internal/queue"
	"github.com/guiate/guiate/internal/worker"
	"github.com/guiate/guiate/pkg/core"
)

// DefaultInterval is how often the heartbeat line is logged.
const DefaultInterval = time.Minute

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	LogManager *logging.SlogManager
	Handle     *catalog.Handle
	Events     *queue.Queue[core.GuessEvent]
	Worker     *worker.Manager
	Guesses    *cache.SafeCounter
}

// Service logs a periodic heartbeat with pipeline health figures so
// operators can read the state of the game from the log stream alone.
type Service struct {
	deps      Dependencies
	interval  time.Duration
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	return &Service{
		deps:     deps,
		interval: DefaultInterval,
		stopChan: make(chan struct{}),
	}
}

// SetInterval overrides the heartbeat interval. Must be called before Start.
func (s *Service) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// IsRunning returns whether the heartbeat is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Snapshot is one heartbeat's worth of pipeline figures.
type Snapshot struct {
	CatalogLoaded   bool
	QueueDepth      int
	GuessesServed   int
	LastDrainMillis int64
}

// Status collects the current pipeline figures.
func (s *Service) Status() Snapshot {
	snap := Snapshot{
		CatalogLoaded: s.deps.Handle.Loaded(),
		QueueDepth:    s.deps.Events.Len(),
		GuessesServed: s.deps.Guesses.Value(),
	}
	if s.deps.Worker != nil {
		snap.LastDrainMillis = s.deps.Worker.LastDrainDuration().Milliseconds()
	}
	return snap
}

// Start starts the heartbeat goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		logger := s.deps.LogManager.Logger()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				snap := s.Status()
				logger.Info("Heartbeat",
					"catalogLoaded", snap.CatalogLoaded,
					"queueDepth", snap.QueueDepth,
					"guessesServed", snap.GuessesServed,
					"lastDrainMs", snap.LastDrainMillis,
				)
			}
		}
	}()

	return nil
}

// Stop stops the heartbeat. Safe to call repeatedly: isRunning flips
// under the lock here, not in the goroutine, so a second Stop cannot
// close the channel again.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		s.isRunning = false
		close(s.stopChan)
	}
}
