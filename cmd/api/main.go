// ABOUTME: Main entry point for the Fale proxy API server
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

	"fale-proxy-api/api"
	"fale-proxy-api/api/handlers"
	"fale-proxy-api/api/middleware"
	"fale-proxy-api/core/interfaces"
	"fale-proxy-api/core/rewrite"
	stdhttp "fale-proxy-api/infrastructure/http/standard"
	"fale-proxy-api/infrastructure/logger/structured"
	"fale-proxy-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Fale proxy", map[string]interface{}{
		"port":          cfg.Server.Port,
		"fetch_timeout": cfg.Fetch.TimeoutSeconds,
		"rate_limit":    cfg.RateLimit.Requests,
	})

	httpClient := stdhttp.NewStandardHTTPClientWithTransport(
		time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
		&middleware.LoggingRoundTripper{Transport: http.DefaultTransport, Logger: logger},
	)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}
	rewriteService := rewrite.NewService(deps)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		TrustProxy: cfg.RateLimit.TrustProxy,
	})

	handlers.NewFetchHandler(rewriteService, logger).RegisterRoutes(humaAPI)
	handlers.NewLandingHandler().RegisterRoutes(router)

	// No WriteTimeout: a fetch has no deadline unless FETCH_TIMEOUT is set
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
