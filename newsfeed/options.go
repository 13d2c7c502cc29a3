// ABOUTME: Configuration options for the newsfeed library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package newsfeed

import (
	"time"

	"guardian-news-api/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// HTTPClient replaces the default transport; timeouts and user agent are then ignored
	HTTPClient interfaces.HTTPClient

	// Logger receives fetch and extraction logs
	Logger interfaces.Logger

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "http client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTimeouts sets the connect and read timeouts of the default HTTP client
func WithTimeouts(connect, read time.Duration) Option {
	return func(c *Config) error {
		if connect <= 0 || read <= 0 {
			return NewError(ErrorTypeConfiguration, "timeouts must be positive").
				WithContext("connect", connect.String()).
				WithContext("read", read.String())
		}
		c.ConnectTimeout = connect
		c.ReadTimeout = read
		return nil
	}
}

// WithUserAgent sets the User-Agent header of the default HTTP client
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = interfaces.NopLogger{}
		return nil
	}
}
