// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts fetch and validation errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"guardian-news-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// URLs are built server-side, so a rejected one is our fault
	if errors.IsInvalidURL(err) {
		return huma.Error500InternalServerError("Feed URL is misconfigured", err)
	}

	if errors.IsBadStatus(err) {
		status := errors.StatusCode(err)
		switch {
		case status == http.StatusTooManyRequests:
			return huma.Error429TooManyRequests("Rate limited by news source")
		case status >= 500:
			return huma.Error503ServiceUnavailable("News source error", err)
		default:
			return huma.Error502BadGateway("News source rejected the request", err)
		}
	}

	if errors.IsIOFailure(err) {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return huma.Error504GatewayTimeout("News source timed out", err)
		}
		return huma.Error503ServiceUnavailable("News source unreachable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
