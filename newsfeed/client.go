// ABOUTME: Main client for the newsfeed library providing one-shot and controller-driven loads
// ABOUTME: Offers the fetch and extraction pipeline without the HTTP API around it

package newsfeed

import (
	"context"
	"sync/atomic"

	"guardian-news-api/core/domain"
	"guardian-news-api/core/feed"
	"guardian-news-api/core/fetch"
	"guardian-news-api/core/interfaces"
	"guardian-news-api/core/loader"
	"guardian-news-api/pkg/guardian"
)

// Client is the main entry point for the newsfeed library
type Client struct {
	fetcher   *fetch.Client
	extractor *feed.Extractor
	deps      interfaces.Dependencies
	config    Config
	closed    atomic.Bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	completeConfig(&config)

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	return &Client{
		fetcher:   fetch.NewClient(deps),
		extractor: feed.NewExtractor(config.Logger),
		deps:      deps,
		config:    config,
	}, nil
}

// Load fetches url and extracts its items on the calling goroutine.
// A malformed body yields an empty result, not an error.
func (c *Client) Load(ctx context.Context, url string) (domain.FeedResult, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fromFetchError(url, err)
	}
	return c.extractor.Extract(body), nil
}

// Search builds a search URL from params and loads it
func (c *Client) Search(ctx context.Context, params guardian.SearchParams) (domain.FeedResult, error) {
	url, err := guardian.SearchURL(params)
	if err != nil {
		return nil, NewError(ErrorTypeValidation, "invalid search parameters").WithCause(err)
	}
	return c.Load(ctx, url)
}

// NewController returns an idle load controller sharing this client's
// fetcher and extractor. A nil dispatcher delivers on the worker goroutine.
func (c *Client) NewController(dispatcher loader.Dispatcher) *loader.Controller {
	return loader.NewController(c.fetcher, c.extractor, dispatcher, c.config.Logger)
}

// Close marks the client closed; later Load calls fail with ErrClientClosed
func (c *Client) Close() error {
	c.closed.Store(true)
	return nil
}
