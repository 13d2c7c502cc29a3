// ABOUTME: Load controller drives one fetch-and-extract cycle at a time off the caller's goroutine
// ABOUTME: Stale completions are discarded by comparing generations at delivery time

package loader

import (
	"context"
	"sync"
	"sync/atomic"

	"guardian-news-api/core/domain"
	"guardian-news-api/core/interfaces"
)

// State is the lifecycle state of a Controller
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDelivered
	StateFailed
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDelivered:
		return "delivered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Observer receives the outcome of a load cycle, at most once per cycle.
// OnResult may receive an empty result; OnFailure means the request could
// not be completed.
type Observer interface {
	OnResult(result domain.FeedResult)
	OnFailure(err error)
}

// ObserverFuncs adapts a pair of functions to the Observer interface.
// Nil functions are skipped.
type ObserverFuncs struct {
	Result  func(result domain.FeedResult)
	Failure func(err error)
}

func (o ObserverFuncs) OnResult(result domain.FeedResult) {
	if o.Result != nil {
		o.Result(result)
	}
}

func (o ObserverFuncs) OnFailure(err error) {
	if o.Failure != nil {
		o.Failure(err)
	}
}

// CycleObserver receives the same outcomes as Observer, tagged with the
// generation of the cycle that produced them
type CycleObserver interface {
	OnCycleResult(gen uint64, result domain.FeedResult)
	OnCycleFailure(gen uint64, err error)
}

type plainObserver struct {
	Observer
}

func (o plainObserver) OnCycleResult(_ uint64, result domain.FeedResult) {
	o.OnResult(result)
}

func (o plainObserver) OnCycleFailure(_ uint64, err error) {
	o.OnFailure(err)
}

// Controller owns one logical current request
type Controller struct {
	fetcher    interfaces.FeedFetcher
	extractor  interfaces.FeedExtractor
	dispatcher Dispatcher
	logger     interfaces.Logger

	generation atomic.Uint64

	mu       sync.Mutex
	state    State
	observer CycleObserver
	result   domain.FeedResult
	err      error
	cancel   context.CancelFunc
}

// NewController creates an idle controller. A nil dispatcher delivers
// inline on the worker goroutine; a nil logger discards output.
func NewController(fetcher interfaces.FeedFetcher, extractor interfaces.FeedExtractor, dispatcher Dispatcher, logger interfaces.Logger) *Controller {
	if dispatcher == nil {
		dispatcher = &Inline{}
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Controller{
		fetcher:    fetcher,
		extractor:  extractor,
		dispatcher: dispatcher,
		logger:     logger,
		state:      StateIdle,
	}
}

// SetObserver replaces the observer. Passing nil detaches it.
func (c *Controller) SetObserver(o Observer) {
	if o == nil {
		c.SetCycleObserver(nil)
		return
	}
	c.SetCycleObserver(plainObserver{o})
}

// SetCycleObserver installs o in the same single observer slot as SetObserver
func (c *Controller) SetCycleObserver(o CycleObserver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = o
}

// Start begins a load cycle for url and reports whether one was started.
// It is a no-op while a cycle is loading.
func (c *Controller) Start(url string) bool {
	_, ok := c.StartCycle(url)
	return ok
}

// StartCycle is Start that also returns the generation of the started cycle
func (c *Controller) StartCycle(url string) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked(url)
}

// Restart resets the controller and starts a new cycle in one step
func (c *Controller) Restart(url string) bool {
	_, ok := c.RestartCycle(url)
	return ok
}

// RestartCycle is Restart that also returns the generation of the started cycle
func (c *Controller) RestartCycle(url string) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	return c.startLocked(url)
}

// Reset discards any pending or delivered result and returns to idle.
// A cycle still running will complete without notifying the observer.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the delivered result of the current cycle, if any
func (c *Controller) Result() (domain.FeedResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateDelivered {
		return nil, false
	}
	return c.result, true
}

// Err returns the failure of the current cycle, if it failed
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Generation returns the token of the most recent cycle or reset
func (c *Controller) Generation() uint64 {
	return c.generation.Load()
}

func (c *Controller) startLocked(url string) (uint64, bool) {
	if c.state == StateLoading {
		c.logger.Debug("Load already in progress, ignoring start", nil)
		return 0, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	gen := c.generation.Add(1)

	c.state = StateLoading
	c.result = nil
	c.err = nil
	c.cancel = cancel

	c.logger.Debug("Load started", map[string]interface{}{
		"generation": gen,
	})

	go c.load(ctx, gen, url)
	return gen, true
}

func (c *Controller) resetLocked() {
	gen := c.generation.Add(1)
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateIdle
	c.result = nil
	c.err = nil

	c.logger.Debug("Loader reset", map[string]interface{}{
		"generation": gen,
	})
}

// load runs on its own goroutine, one per cycle
func (c *Controller) load(ctx context.Context, gen uint64, url string) {
	body, err := c.fetcher.Fetch(ctx, url)

	var result domain.FeedResult
	if err == nil {
		result = c.extractor.Extract(body)
	}

	if c.generation.Load() != gen {
		c.logger.Debug("Discarding superseded load", map[string]interface{}{
			"generation": gen,
		})
		return
	}

	c.dispatcher.Dispatch(func() {
		c.deliver(gen, result, err)
	})
}

// deliver runs on the dispatcher
func (c *Controller) deliver(gen uint64, result domain.FeedResult, err error) {
	c.mu.Lock()
	if c.generation.Load() != gen || c.state != StateLoading {
		c.mu.Unlock()
		c.logger.Debug("Discarding stale delivery", map[string]interface{}{
			"generation": gen,
		})
		return
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		c.state = StateFailed
		c.err = err
	} else {
		c.state = StateDelivered
		c.result = result
	}
	observer := c.observer
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Load failed", map[string]interface{}{
			"generation": gen,
			"error":      err.Error(),
		})
	} else {
		c.logger.Info("Load delivered", map[string]interface{}{
			"generation": gen,
			"items":      result.Len(),
		})
	}

	if observer == nil {
		return
	}
	if err != nil {
		observer.OnCycleFailure(gen, err)
		return
	}
	observer.OnCycleResult(gen, result)
}
