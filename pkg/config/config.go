// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, news source, fetching, logging and rate limiting

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Guardian describes the news search endpoint
	Guardian GuardianConfig

	// Fetch contains outbound HTTP timeouts
	Fetch FetchConfig

	// Log contains logger configuration
	Log LogConfig

	// RateLimit contains API rate limiting configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshTimer is the interval in seconds between feed refreshes; 0 disables it
	RefreshTimer int
}

// GuardianConfig holds the parameters used to build the search URL
type GuardianConfig struct {
	BaseURL  string
	APIKey   string
	Section  string
	Query    string
	PageSize int
	OrderBy  string
}

// FetchConfig holds outbound request timeouts in milliseconds
type FetchConfig struct {
	ConnectTimeoutMS int
	ReadTimeoutMS    int
	UserAgent        string
}

// ConnectTimeout returns the connect timeout as a duration
func (f FetchConfig) ConnectTimeout() time.Duration {
	return time.Duration(f.ConnectTimeoutMS) * time.Millisecond
}

// ReadTimeout returns the read timeout as a duration
func (f FetchConfig) ReadTimeout() time.Duration {
	return time.Duration(f.ReadTimeoutMS) * time.Millisecond
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File is the log file path; empty logs to stdout
	File string
}

// RateLimitConfig holds per-client request limits for the HTTP API
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			RefreshTimer: getEnvAsIntOrDefault("REFRESH_TIMER", 0),
		},
		Guardian: GuardianConfig{
			BaseURL:  getEnvOrDefault("GUARDIAN_BASE_URL", "https://content.guardianapis.com/"),
			APIKey:   getEnvOrDefault("GUARDIAN_API_KEY", "test"),
			Section:  getEnvOrDefault("GUARDIAN_SECTION", ""),
			Query:    getEnvOrDefault("GUARDIAN_QUERY", ""),
			PageSize: getEnvAsIntOrDefault("GUARDIAN_PAGE_SIZE", 0),
			OrderBy:  getEnvOrDefault("GUARDIAN_ORDER_BY", ""),
		},
		Fetch: FetchConfig{
			ConnectTimeoutMS: getEnvAsIntOrDefault("FETCH_CONNECT_TIMEOUT_MS", 15000),
			ReadTimeoutMS:    getEnvAsIntOrDefault("FETCH_READ_TIMEOUT_MS", 10000),
			UserAgent:        getEnvOrDefault("FETCH_USER_AGENT", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 5),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 10),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshTimer < 0 {
		return errors.New("refresh timer cannot be negative")
	}

	base, err := url.Parse(c.Guardian.BaseURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return errors.New("guardian base url must be an absolute http(s) url")
	}

	if c.Guardian.APIKey == "" {
		return errors.New("guardian api key cannot be empty")
	}

	if c.Guardian.PageSize < 0 {
		return errors.New("page size cannot be negative")
	}

	if c.Fetch.ConnectTimeoutMS < 1 || c.Fetch.ReadTimeoutMS < 1 {
		return errors.New("fetch timeouts must be at least 1 millisecond")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("rate limit must allow at least one request")
	}

	return nil
}
