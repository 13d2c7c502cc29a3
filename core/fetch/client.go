// ABOUTME: Fetch client performs one GET against a fully built URL and returns the raw body
// ABOUTME: Maps every failure to InvalidURL, BadStatus or IOFailure and never retries

package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	coreerrors "guardian-news-api/core/errors"
	"guardian-news-api/core/interfaces"
)

// ErrNoHTTPClient is wrapped in an IOFailureError when the client was built without a transport
var ErrNoHTTPClient = errors.New("HTTP client not configured")

// Client implements interfaces.FeedFetcher on top of an interfaces.HTTPClient
type Client struct {
	http   interfaces.HTTPClient
	logger interfaces.Logger
}

// NewClient creates a fetch client from the injected dependencies
func NewClient(deps interfaces.Dependencies) *Client {
	return &Client{
		http:   deps.HTTPClient,
		logger: deps.LoggerOrNop(),
	}
}

// Fetch returns the body of a 200 response. Non-200 responses are reported as
// BadStatusError without reading the body. The response is always closed.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateURL(rawURL); err != nil {
		c.logger.Warn("Rejected feed URL", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if c.http == nil {
		return nil, &coreerrors.IOFailureError{URL: rawURL, Op: "GET", Err: ErrNoHTTPClient}
	}

	resp, err := c.http.Get(ctx, rawURL)
	if err != nil {
		return nil, &coreerrors.IOFailureError{URL: rawURL, Op: "GET", Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error("Error response code", map[string]interface{}{
			"status": resp.StatusCode(),
		})
		return nil, &coreerrors.BadStatusError{URL: rawURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.IOFailureError{URL: rawURL, Op: "read body", Err: err}
	}

	if !utf8.Valid(body) {
		body = []byte(strings.ToValidUTF8(string(body), "�"))
	}

	c.logger.Debug("Fetched feed body", map[string]interface{}{
		"bytes": len(body),
	})

	return body, nil
}

// ValidateURL checks that rawURL is an absolute http or https URL with a host
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &coreerrors.InvalidURLError{Reason: "url is empty"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &coreerrors.InvalidURLError{URL: rawURL, Reason: "cannot be parsed", Err: err}
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	case "":
		return &coreerrors.InvalidURLError{URL: rawURL, Reason: "missing scheme"}
	default:
		return &coreerrors.InvalidURLError{URL: rawURL, Reason: "unsupported scheme " + parsed.Scheme}
	}

	if parsed.Host == "" {
		return &coreerrors.InvalidURLError{URL: rawURL, Reason: "missing host"}
	}

	return nil
}
