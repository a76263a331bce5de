// ABOUTME: Main entry point for the reputation analytics API server
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

	"reputraq-api/api"
	"reputraq-api/api/handlers"
	"reputraq-api/core/comparison"
	"reputraq-api/core/interfaces"
	"reputraq-api/core/match"
	"reputraq-api/core/reach"
	"reputraq-api/core/sentiment"
	"reputraq-api/core/voiceshare"
	"reputraq-api/infrastructure/cache/memory"
	"reputraq-api/infrastructure/cache/redis"
	"reputraq-api/infrastructure/cache/sqlite"
	logruslogger "reputraq-api/infrastructure/logger/logrus"
	"reputraq-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Log.Level)
	logger.Info("Starting Reputraq Analytics API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache := newCache(cfg, logger)

	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Core services
	matcher := match.NewMatcher()
	sentimentService := sentiment.NewSentimentService(deps)
	comparisonService := comparison.NewComparisonService(deps)
	reachEstimator := reach.NewEstimator(deps)
	voiceShareService := voiceshare.NewVoiceShareService(deps, reachEstimator)

	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: float64(cfg.Server.RateLimit),
		RateBurst: cfg.Server.RateBurst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	analysisHandler := handlers.NewAnalysisHandler(matcher, sentimentService)
	analysisHandler.RegisterRoutes(humaAPI)

	comparisonHandler := handlers.NewComparisonHandler(matcher, comparisonService)
	comparisonHandler.RegisterRoutes(humaAPI)

	reachHandler := handlers.NewReachHandler(reachEstimator)
	reachHandler.RegisterRoutes(humaAPI)

	voiceShareHandler := handlers.NewVoiceShareHandler(voiceShareService)
	voiceShareHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

// newCache builds the configured cache backend, falling back to memory
// when the backend cannot be reached.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		expiration := time.Duration(cfg.Cache.MemoryExpiration) * time.Second
		return memory.NewMemoryCache(expiration, 10*time.Minute)
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memoryCache()
	}
}
