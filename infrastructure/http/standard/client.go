// ABOUTME: Standard HTTP client implementation with connect and read timeouts
// ABOUTME: Issues single-attempt GET requests and logs outgoing traffic through the core Logger

package standard

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"guardian-news-api/core/interfaces"
)

const (
	// DefaultConnectTimeout bounds establishing the TCP and TLS connection
	DefaultConnectTimeout = 15 * time.Second

	// DefaultReadTimeout bounds each wait for data from the server
	DefaultReadTimeout = 10 * time.Second

	defaultUserAgent = "GuardianNewsAPI/1.0"
)

// Options configures a StandardHTTPClient. Zero values fall back to the defaults.
type Options struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
	Logger         interfaces.Logger
}

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the given options
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	dialer := &net.Dialer{
		Timeout:   opts.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           readTimeoutDialer(dialer, opts.ReadTimeout),
		TLSHandshakeTimeout:   opts.ConnectTimeout,
		ResponseHeaderTimeout: opts.ReadTimeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	if opts.Logger != nil {
		transport = &LoggingRoundTripper{
			Transport: transport,
			Logger:    opts.Logger,
		}
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Transport: transport,
		},
		userAgent: opts.UserAgent,
	}
}

// Get performs a single HTTP GET request. It never retries.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// readTimeoutDialer wraps every dialed connection so that each Read is bounded by timeout
func readTimeoutDialer(dialer *net.Dialer, timeout time.Duration) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		return &readTimeoutConn{Conn: conn, timeout: timeout}, nil
	}
}

// readTimeoutConn refreshes the read deadline before every Read
type readTimeoutConn struct {
	net.Conn
	timeout time.Duration
}

func (c *readTimeoutConn) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
