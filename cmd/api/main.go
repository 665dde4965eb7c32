// Copyright (c) 2026 Our Philly. All rights reserved.

// Command api is the entry point for the Our Philly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services, the feed fetcher, and the digest scheduler.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ourphilly/ourphilly/internal/api"
	"github.com/ourphilly/ourphilly/internal/core/area"
	"github.com/ourphilly/ourphilly/internal/core/bigboard"
	"github.com/ourphilly/ourphilly/internal/core/event"
	"github.com/ourphilly/ourphilly/internal/core/group"
	"github.com/ourphilly/ourphilly/internal/core/series"
	"github.com/ourphilly/ourphilly/internal/core/tag"
	"github.com/ourphilly/ourphilly/internal/core/tradition"
	"github.com/ourphilly/ourphilly/internal/digest"
	"github.com/ourphilly/ourphilly/internal/feed"
	"github.com/ourphilly/ourphilly/internal/platform/config"
	"github.com/ourphilly/ourphilly/internal/platform/constants"
	"github.com/ourphilly/ourphilly/internal/platform/migration"
	pgstore "github.com/ourphilly/ourphilly/internal/platform/postgres"
	redisstore "github.com/ourphilly/ourphilly/internal/platform/redis"
	"github.com/ourphilly/ourphilly/internal/platform/sec"
	"github.com/ourphilly/ourphilly/internal/platform/storage"
	"github.com/ourphilly/ourphilly/internal/sports"
	"github.com/ourphilly/ourphilly/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Every window calculation in the system happens in the site's timezone.
	location, err := cfg.Location()
	must(log, err, "load timezone")

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Platform Services ──────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	resolver := storage.NewResolver(cfg.StorageBaseURL, cfg.StorageBucket)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewSessionRepository(pool),
		auth.NewResetTokenRepository(rdb),
		auth.NewVerificationTokenRepository(rdb),
		jwtSvc,
	)

	eventService := event.NewService(event.NewPostgresRepository(pool), log)
	traditionService := tradition.NewService(tradition.NewPostgresRepository(pool), location, log)
	bigBoardService := bigboard.NewService(bigboard.NewPostgresRepository(pool), resolver, log)
	groupService := group.NewService(group.NewPostgresRepository(pool), resolver, log)
	seriesService := series.NewService(series.NewPostgresRepository(pool), resolver, location, log)
	tagService := tag.NewService(tag.NewPostgresRepository(pool), location, log)
	areaService := area.NewService(area.NewPostgresRepository(pool), rdb, log)

	sportsClient := sports.NewClient(cfg.SportsAPIBaseURL, cfg.SportsAPIClientID, location, log)

	fetcher := feed.NewFetcher(
		bigBoardService,
		traditionService,
		eventService,
		seriesService,
		groupService,
		sportsClient,
		location,
		log,
	)

	// ── 8. Digest ─────────────────────────────────────────────────────────
	sender := digest.NewSender(cfg.EmailAPIBaseURL, cfg.EmailAPIKey, cfg.EmailFrom)
	digestService := digest.NewService(
		fetcher,
		tagService,
		digest.NewPostgresSubscriberRepository(pool),
		sender,
		location,
		log,
	)

	scheduler, err := digest.NewScheduler(digestService, cfg.DigestSchedule, log)
	must(log, err, "initialize digest scheduler")
	scheduler.Start()
	defer scheduler.Stop()

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Feed:      feed.NewHandler(fetcher, location),
		Event:     event.NewHandler(eventService),
		Tradition: tradition.NewHandler(traditionService),
		BigBoard:  bigboard.NewHandler(bigBoardService),
		Group:     group.NewHandler(groupService),
		Series:    series.NewHandler(seriesService),
		Tag:       tag.NewHandler(tagService),
		Area:      area.NewHandler(areaService),
		Digest:    digest.NewHandler(digestService),
	}

	server := api.NewServer(context.Background(), cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
