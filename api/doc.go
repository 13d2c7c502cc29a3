// Package api provides the HTTP API layer for the Guardian news service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: response DTOs and the mappers that build them from domain values
// - middleware/: request IDs, request logging and rate limiting
//
// # Endpoints
//
//	GET  /news           latest snapshot of the configured feed
//	POST /news/refresh   start a background load (?force=true abandons a running one)
//	GET  /news/search    one-off synchronous search
//	GET  /health         liveness and loader state
//
// The OpenAPI spec is served at /openapi.json and the Swagger UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: middleware.NewRateLimiter(5, 10, 0),
//	})
//
//	handlers.NewNewsHandler(newsService, client, defaults, logger).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(newsService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Fetch failures map to gateway-style statuses: a 429 from the news source
// becomes 429, other 5xx become 503, remaining statuses become 502 and
// transport failures become 503 or 504 on timeout. Malformed JSON from the
// source is not an error; it yields an empty item list.
package api
