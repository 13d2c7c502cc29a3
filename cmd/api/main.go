// ABOUTME: Main entry point for the Guardian News API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guardian-news-api/api"
	"guardian-news-api/api/handlers"
	"guardian-news-api/api/middleware"
	"guardian-news-api/core/feed"
	"guardian-news-api/core/fetch"
	"guardian-news-api/core/interfaces"
	"guardian-news-api/core/news"
	stdhttp "guardian-news-api/infrastructure/http/standard"
	"guardian-news-api/infrastructure/logger/structured"
	"guardian-news-api/newsfeed"
	"guardian-news-api/pkg/config"
	"guardian-news-api/pkg/featureflags"
	"guardian-news-api/pkg/guardian"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may be set by the host
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := featureflags.WithManager(context.Background(), flags)

	searchParams := guardian.ParamsFromConfig(cfg.Guardian)
	feedURL, err := guardian.SearchURL(searchParams)
	if err != nil {
		log.Fatalf("Failed to build feed URL: %v", err)
	}

	refreshInterval := time.Duration(cfg.Server.RefreshTimer) * time.Second
	if !featureflags.IsEnabled(ctx, featureflags.AutoRefresh) {
		refreshInterval = 0
	}

	logger.Info("Starting Guardian News API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"refresh_timer": refreshInterval.String(),
		"section":       cfg.Guardian.Section,
		"flags":         flags.GetAllFlags(),
	})

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		ConnectTimeout: cfg.Fetch.ConnectTimeout(),
		ReadTimeout:    cfg.Fetch.ReadTimeout(),
		UserAgent:      cfg.Fetch.UserAgent,
		Logger:         logger,
	})

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	newsService := news.NewService(fetch.NewClient(deps), feed.NewExtractor(logger), logger, news.Config{
		URL:             feedURL,
		RefreshInterval: refreshInterval,
	})

	client, err := newsfeed.NewClient(
		newsfeed.WithHTTPClient(httpClient),
		newsfeed.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create feed client: %v", err)
	}
	defer client.Close()

	apiConfig := api.APIConfig{}
	if featureflags.IsEnabled(ctx, featureflags.RequestLogging) {
		apiConfig.Logger = logger
	}
	if featureflags.IsEnabled(ctx, featureflags.RateLimit) {
		apiConfig.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 0)
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewNewsHandler(newsService, client, searchParams, logger).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(newsService).RegisterRoutes(humaAPI)

	if err := newsService.Start(); err != nil {
		log.Fatalf("Failed to start news service: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	newsService.Stop()
	logger.Info("Server stopped", nil)
}
