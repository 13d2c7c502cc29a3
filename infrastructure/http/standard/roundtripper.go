// ABOUTME: Logging round tripper tags outgoing feed requests with a request ID
// ABOUTME: Every upstream call is logged with the api-key query parameter redacted

package standard

import (
	"net/http"
	"time"

	"guardian-news-api/core/interfaces"

	"github.com/google/uuid"
)

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests and tags them with a request ID
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := req.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", requestID)
	}

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        redactedURL(req),
		"host":       req.URL.Host,
	})

	resp, err := t.Transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.Logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        redactedURL(req),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        redactedURL(req),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}

// redactedURL hides the api-key query parameter
func redactedURL(req *http.Request) string {
	u := *req.URL
	q := u.Query()
	if q.Has("api-key") {
		q.Set("api-key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
