package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps the core free of a concrete logging library.
//
// Example usage:
//
//	logger.Info("Feed delivered", map[string]interface{}{
//		"url":   "https://content.guardianapis.com/search?api-key=test",
//		"items": 10,
//	})
//
//	logger.Error("Fetch failed", map[string]interface{}{
//		"url":   "https://content.guardianapis.com/search?api-key=test",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
