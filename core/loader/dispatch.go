// ABOUTME: Dispatchers hand completed load cycles back to the goroutine that consumes them
// ABOUTME: Queue is drained by its owner; Inline runs deliveries serialized on the worker goroutine

package loader

import (
	"context"
	"sync"
)

// Dispatcher runs delivery callbacks on the consumer's side.
// Implementations must never run two callbacks at the same time.
type Dispatcher interface {
	Dispatch(fn func())
}

// Queue is a delivery queue drained by a single consumer goroutine
type Queue struct {
	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// DefaultQueueSize is used when NewQueue is given a non-positive size
const DefaultQueueSize = 16

// NewQueue creates a queue with room for size pending deliveries
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		tasks: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Dispatch enqueues fn. It blocks while the queue is full and drops fn once
// the queue has been closed.
func (q *Queue) Dispatch(fn func()) {
	select {
	case <-q.done:
		return
	default:
	}

	select {
	case q.tasks <- fn:
	case <-q.done:
	}
}

// Run executes queued callbacks until ctx is done or the queue is closed
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-q.tasks:
			fn()
		case <-q.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunOne waits for a single callback and executes it
func (q *Queue) RunOne(ctx context.Context) error {
	select {
	case fn := <-q.tasks:
		fn()
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain executes every callback already queued without waiting and returns how many ran
func (q *Queue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}

// Len reports the number of callbacks waiting to run
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Close stops Run and makes later Dispatch calls no-ops
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

// Inline runs callbacks directly on the calling goroutine, one at a time
type Inline struct {
	mu sync.Mutex
}

// Dispatch runs fn while holding the dispatcher lock
func (d *Inline) Dispatch(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// ErrQueueClosed is returned by RunOne after Close
var ErrQueueClosed = &LoaderError{Message: "delivery queue is closed"}

// LoaderError represents a loader-specific error
type LoaderError struct {
	Message string
}

func (e *LoaderError) Error() string {
	return e.Message
}
