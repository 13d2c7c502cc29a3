package loader

import (
	"context"
	"sync"
	"sync/atomic"

	"guardian-news-api/core/domain"
)

// gatedFetcher blocks every Fetch until release is closed or ctx is cancelled
type gatedFetcher struct {
	release  chan struct{}
	returned chan struct{}
	body     []byte
	err      error
	calls    atomic.Int32
	urls     chan string
}

func newGatedFetcher(body string, err error) *gatedFetcher {
	return &gatedFetcher{
		release:  make(chan struct{}),
		returned: make(chan struct{}, 8),
		body:     []byte(body),
		err:      err,
		urls:     make(chan string, 8),
	}
}

func (f *gatedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	f.urls <- url
	defer func() { f.returned <- struct{}{} }()

	select {
	case <-f.release:
		return f.body, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *gatedFetcher) open() {
	close(f.release)
}

// countingExtractor returns one item per call and counts invocations
type countingExtractor struct {
	calls  atomic.Int32
	result domain.FeedResult
}

func (e *countingExtractor) Extract(body []byte) domain.FeedResult {
	e.calls.Add(1)
	if e.result != nil {
		return e.result
	}
	return domain.FeedResult{domain.NewNewsItem(string(body), "S", "u")}
}

// recordingObserver captures every callback
type recordingObserver struct {
	mu       sync.Mutex
	results  []domain.FeedResult
	failures []error
}

func (o *recordingObserver) OnResult(result domain.FeedResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results = append(o.results, result)
}

func (o *recordingObserver) OnFailure(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, err)
}

func (o *recordingObserver) counts() (int, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.results), len(o.failures)
}

// cycleRecorder captures the generation reported with each outcome
type cycleRecorder struct {
	mu          sync.Mutex
	resultGens  []uint64
	failureGens []uint64
}

func (o *cycleRecorder) OnCycleResult(gen uint64, _ domain.FeedResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resultGens = append(o.resultGens, gen)
}

func (o *cycleRecorder) OnCycleFailure(gen uint64, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failureGens = append(o.failureGens, gen)
}

func (o *cycleRecorder) generations() ([]uint64, []uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]uint64(nil), o.resultGens...), append([]uint64(nil), o.failureGens...)
}
