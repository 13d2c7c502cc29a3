// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the fetch and extract contracts the load controller is built on

package interfaces

import (
	"context"

	"guardian-news-api/core/domain"
)

// FeedFetcher retrieves the raw body of a fully built feed URL.
// Errors are one of the fetch failures in core/errors.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FeedExtractor turns a raw response body into news items. It never fails;
// a nil body or unusable input yields an empty result.
type FeedExtractor interface {
	Extract(body []byte) domain.FeedResult
}
