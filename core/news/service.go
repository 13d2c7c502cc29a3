// ABOUTME: News service keeps the latest feed snapshot fresh using a single load controller
// ABOUTME: Deliveries are consumed on the service's own goroutine; an optional ticker triggers refreshes

package news

import (
	"context"
	"errors"
	"sync"
	"time"

	"guardian-news-api/core/domain"
	"guardian-news-api/core/interfaces"
	"guardian-news-api/core/loader"
)

// ErrServiceStopped is returned when Start is called after Stop
var ErrServiceStopped = errors.New("news service has been stopped")

// Snapshot is the state of the feed as last observed by the service
type Snapshot struct {
	State      loader.State
	Items      domain.FeedResult
	Err        error
	UpdatedAt  time.Time
	Generation uint64
}

// Config holds the service settings
type Config struct {
	// URL is the fully built search URL loaded on every refresh
	URL string

	// RefreshInterval triggers a refresh on a ticker; zero disables it
	RefreshInterval time.Duration

	// QueueSize bounds pending deliveries
	QueueSize int
}

// Service owns one load controller and the snapshot it produces
type Service struct {
	controller *loader.Controller
	queue      *loader.Queue
	logger     interfaces.Logger
	config     Config

	mu       sync.RWMutex
	snapshot Snapshot
	changed  chan struct{}

	// lifeMu guards accepting; Refresh and Reload hold it for reading
	lifeMu    sync.RWMutex
	accepting bool

	runMu   sync.Mutex
	running bool
	stopped bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates a stopped service
func NewService(fetcher interfaces.FeedFetcher, extractor interfaces.FeedExtractor, logger interfaces.Logger, config Config) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	queue := loader.NewQueue(config.QueueSize)
	s := &Service{
		queue:   queue,
		logger:  logger,
		config:  config,
		changed: make(chan struct{}),
		snapshot: Snapshot{
			State: loader.StateIdle,
			Items: domain.FeedResult{},
		},
	}
	s.controller = loader.NewController(fetcher, extractor, queue, logger)
	s.controller.SetCycleObserver(s)
	return s
}

// Start launches the delivery consumer, the refresh ticker and the first load
func (s *Service) Start() error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.running {
		return nil
	}
	if s.stopped {
		return ErrServiceStopped
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.queue.Run(ctx)
	}()

	if s.config.RefreshInterval > 0 {
		s.wg.Add(1)
		go s.refreshLoop(ctx)
	}

	s.running = true
	s.setAccepting(true)
	s.logger.Info("News service started", map[string]interface{}{
		"refresh_interval": s.config.RefreshInterval.String(),
	})

	s.Refresh()
	return nil
}

// Stop abandons any in-flight load and waits for the service goroutines
func (s *Service) Stop() error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if !s.running {
		return nil
	}

	s.setAccepting(false)
	s.controller.Reset()
	s.cancel()
	s.queue.Close()
	s.wg.Wait()

	s.running = false
	s.stopped = true
	s.logger.Info("News service stopped", nil)
	return nil
}

// Refresh starts a load unless one is already running and reports whether it did.
// Items from the previous cycle stay visible until the new one delivers.
// It returns false while the service is not running.
func (s *Service) Refresh() bool {
	return s.begin(s.controller.StartCycle)
}

// Reload abandons any in-flight load and starts a new one.
// It returns false while the service is not running.
func (s *Service) Reload() bool {
	return s.begin(s.controller.RestartCycle)
}

// Snapshot returns the latest snapshot
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Changed returns a channel that is closed on the next snapshot update
func (s *Service) Changed() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changed
}

// OnCycleResult implements loader.CycleObserver
func (s *Service) OnCycleResult(gen uint64, result domain.FeedResult) {
	s.update(gen, func(snap *Snapshot) bool {
		if gen < snap.Generation {
			return false
		}
		snap.State = loader.StateDelivered
		snap.Items = result
		snap.Err = nil
		return true
	})
}

// OnCycleFailure implements loader.CycleObserver. The previous items are kept.
func (s *Service) OnCycleFailure(gen uint64, err error) {
	s.update(gen, func(snap *Snapshot) bool {
		if gen < snap.Generation {
			return false
		}
		snap.State = loader.StateFailed
		snap.Err = err
		return true
	})
}

func (s *Service) setAccepting(v bool) {
	s.lifeMu.Lock()
	s.accepting = v
	s.lifeMu.Unlock()
}

func (s *Service) begin(start func(url string) (uint64, bool)) bool {
	s.lifeMu.RLock()
	defer s.lifeMu.RUnlock()

	if !s.accepting {
		s.logger.Debug("News service not running, ignoring load request", nil)
		return false
	}

	gen, ok := start(s.config.URL)
	if ok {
		s.markLoading(gen)
	}
	return ok
}

// markLoading records Loading for cycle gen unless that cycle has already
// reported its outcome. The worker may queue its delivery before this runs.
func (s *Service) markLoading(gen uint64) {
	s.queue.Dispatch(func() {
		s.update(gen, func(snap *Snapshot) bool {
			if gen <= snap.Generation {
				return false
			}
			snap.State = loader.StateLoading
			return true
		})
	})
}

// update applies fn and publishes the snapshot for cycle gen when fn reports a change
func (s *Service) update(gen uint64, fn func(snap *Snapshot) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(&s.snapshot) {
		return
	}
	s.snapshot.Generation = gen
	s.snapshot.UpdatedAt = time.Now()
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Service) refreshLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.Refresh() {
				s.logger.Debug("Skipping scheduled refresh, load in progress", nil)
			}
		case <-ctx.Done():
			return
		}
	}
}
