// Package core contains the business logic for the news feed loader.
// It is framework-agnostic and can be used independently of the HTTP API.
//
// The core package is organized into several sub-packages:
//
// - domain: NewsItem and FeedResult
// - fetch: single-attempt HTTP GET with status and URL validation
// - feed: tolerant extraction of news items from a search response
// - loader: asynchronous load controller with generation-based cancellation
// - news: long-lived service that owns a controller and keeps the latest snapshot
// - errors: custom error types for fetch and parse failures
// - interfaces: contracts for external dependencies (HTTP, logger)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	queue := loader.NewQueue(16)
//	ctrl := loader.NewController(fetch.NewClient(deps), feed.NewExtractor(deps.Logger), queue, deps.Logger)
//	ctrl.SetObserver(myObserver)
//	ctrl.Start("https://content.guardianapis.com/search?show-tags=contributor&api-key=test")
//	queue.Run(ctx) // deliveries happen on this goroutine
package core
