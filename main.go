package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"videothingy/caption-board/config"
	"videothingy/caption-board/handlers"
	"videothingy/caption-board/internal/limiter"
	"videothingy/caption-board/internal/metrics"
	"videothingy/caption-board/internal/supabase"
	"videothingy/caption-board/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.LogLevel)
	if !cfg.Supabase.Configured() {
		logger.Warn("SUPABASE_URL or SUPABASE_ANON_KEY is not set; pages will show a configuration notice")
	}

	var (
		rdb *redis.Client
		rl  middleware.Limiter
	)
	if cfg.RateLimit.Enabled() {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.WithError(err).Warn("Redis is unreachable; the rate limiter will fail open")
		}
		rl = limiter.NewRateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)
		logger.WithFields(logrus.Fields{
			"limit":  cfg.RateLimit.Limit,
			"window": cfg.RateLimit.Window.String(),
		}).Info("Rate limiting enabled")
	}

	h := handlers.NewApplicationHandler(
		supabase.NewCaptionFetcher(cfg.Supabase, cfg.UpstreamTimeout),
		supabase.NewReadinessCheck(cfg.Supabase, cfg.UpstreamTimeout),
		logger,
		metrics.New(prometheus.DefaultRegisterer),
	)
	app := newApp(h, rl, prometheus.DefaultGatherer, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		logger.Infof("Starting caption board on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	logger.WithField("signal", sig.String()).Info("Shutting down gracefully")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.WithError(err).Error("Error closing Redis")
		}
	}
	logger.Info("Server stopped")
}
