package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/verihub/company-registry/internal/api"
	"github.com/verihub/company-registry/internal/infrastructure/config"
	"github.com/verihub/company-registry/internal/infrastructure/db/postgres"
	redisdb "github.com/verihub/company-registry/internal/infrastructure/db/redis"
	"github.com/verihub/company-registry/internal/infrastructure/identity"
	"github.com/verihub/company-registry/internal/token"
	"github.com/verihub/company-registry/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration, refusing to serve")
	}

	tokens, err := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}

	if err := postgres.RunMigrations(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	assertions, err := identity.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("identity provider init failed")
	}

	deps := api.RouterDeps{
		DB:         db,
		Tokens:     tokens,
		Assertions: assertions,
		Log:        log,
	}

	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		deps.Redis = client
	} else {
		log.Warn().Msg("no redis configured, session revocation disabled")
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
