package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/utmhub/conversion-relay/internal/api"
	"github.com/utmhub/conversion-relay/internal/infrastructure/db/postgres"
	"github.com/utmhub/conversion-relay/internal/infrastructure/db/redis"
	"github.com/utmhub/conversion-relay/internal/infrastructure/upstream"
	"github.com/utmhub/conversion-relay/internal/pkg/config"
	"github.com/utmhub/conversion-relay/pkg/logger"
)

const (
	sessionTokenTTL = 7 * 24 * time.Hour
	shutdownGrace   = 10 * time.Second
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Relational store: acquire pool, bootstrap schema ---
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// --- Integration cache ---
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	upstreamClient := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)

	e := api.NewRouter(api.Deps{
		Pool:      pool,
		Redis:     rdb,
		Upstream:  upstreamClient,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  sessionTokenTTL,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()

	// drain in-flight webhook calls before releasing the pool
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
