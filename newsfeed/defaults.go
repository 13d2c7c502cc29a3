// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the HTTP client and logger used when none is supplied

package newsfeed

import (
	"guardian-news-api/core/interfaces"
	httpInfra "guardian-news-api/infrastructure/http/standard"
	"guardian-news-api/infrastructure/logger/structured"
)

func defaultConfig() Config {
	return Config{
		ConnectTimeout: httpInfra.DefaultConnectTimeout,
		ReadTimeout:    httpInfra.DefaultReadTimeout,
		UserAgent:      "GuardianNewsFeed/1.0",
	}
}

// DefaultHTTPClient creates the single-attempt HTTP client with the given settings
func DefaultHTTPClient(config Config) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(httpInfra.Options{
		ConnectTimeout: config.ConnectTimeout,
		ReadTimeout:    config.ReadTimeout,
		UserAgent:      config.UserAgent,
		Logger:         config.Logger,
	})
}

// DefaultLogger creates a text logger at info level that writes to stdout
func DefaultLogger() interfaces.Logger {
	logger, err := structured.NewLogger(structured.Options{})
	if err != nil {
		return interfaces.NopLogger{}
	}
	return logger
}

func completeConfig(config *Config) {
	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}
	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(*config)
	}
}
