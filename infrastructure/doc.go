// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with connect and read timeouts, no retries
// - logger/structured: logrus-backed logger with optional rotating file output
//
// # HTTP Client
//
// The connect timeout bounds dialing and the TLS handshake. The read timeout
// bounds the wait for response headers and every subsequent read of the body.
// Each Get is exactly one attempt:
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    ConnectTimeout: 15 * time.Second,
//	    ReadTimeout:    10 * time.Second,
//	    Logger:         logger,
//	})
//
// When a Logger is set, outgoing requests carry an X-Request-ID and are logged
// at debug level with the api-key query parameter redacted.
//
// # Logger
//
//	logger, err := structured.NewLogger(structured.Options{
//	    Level:  "debug",
//	    Format: "json",
//	    File:   "logs/app.log",
//	})
//	defer logger.Close()
package infrastructure
