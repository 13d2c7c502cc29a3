package fetch

import (
	"context"
	"errors"
	"io"
	"strings"

	"guardian-news-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface that
// records whether its body was read and closed
type mockResponse struct {
	statusCode int
	body       *trackingBody
}

func newMockResponse(status int, body string) *mockResponse {
	return &mockResponse{
		statusCode: status,
		body:       &trackingBody{r: strings.NewReader(body)},
	}
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return m.body
}

func (m *mockResponse) Header(key string) string {
	return ""
}

type trackingBody struct {
	r       io.Reader
	readErr error
	read    bool
	closed  bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	b.read = true
	if b.readErr != nil {
		return 0, b.readErr
	}
	return b.r.Read(p)
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

var errConnectionRefused = errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
