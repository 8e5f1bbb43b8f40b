// @title       DataLab API
// @version     1.0
// @description Identity store and access guard for the DataLab sample tracker.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/datalab/sample-tracker/internal/api"
	"github.com/datalab/sample-tracker/internal/api/handler"
	"github.com/datalab/sample-tracker/internal/api/middleware"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
	"github.com/datalab/sample-tracker/internal/core/service"
	"github.com/datalab/sample-tracker/internal/infrastructure/cache"
	"github.com/datalab/sample-tracker/internal/infrastructure/config"
	"github.com/datalab/sample-tracker/internal/infrastructure/db/memory"
	"github.com/datalab/sample-tracker/internal/infrastructure/db/mongo"
	"github.com/datalab/sample-tracker/internal/infrastructure/db/redis"
	"github.com/datalab/sample-tracker/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// 1. Configuration and logger
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Env:    cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	health := make(map[string]handler.PingFunc)

	// 2. Session slot
	var sessions ports.SessionRepository
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer client.Close()
		sessions = redis.NewSessionRepository(client, log)
		health["redis"] = redis.Ping(client)
	default:
		sessions = memory.NewSessionRepository()
		log.Warn().Msg("using in-process session store; sign-out will not propagate across replicas")
	}

	// 3. Identity store
	var identities ports.IdentityRepository
	switch cfg.IdentityStore {
	case config.IdentityStoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		repo := mongo.NewIdentityRepository(db)
		if err := repo.Seed(ctx, domain.Registry()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed identity registry")
		}
		identities = repo
		health["mongo"] = mongo.Ping(client)
	default:
		identities = memory.NewStaticIdentityRepository()
	}

	cached, err := cache.NewIdentityCache(identities, cfg.IdentityCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build identity cache")
	}

	// 4. Services
	identitySvc := service.NewIdentityService(cached, log)
	sessionSvc := service.NewSessionService(identitySvc, sessions, cfg.LoginDelay, log)
	guard := service.NewGuard(sessions, log)
	watcher := service.NewWatcher(guard, sessions, log)

	// 5. HTTP
	e := api.NewRouter(api.Dependencies{
		Identities: identitySvc,
		Sessions:   sessionSvc,
		Guard:      guard,
		Watcher:    watcher,
		Catalog:    memory.NewLabCatalog(),
		Origins:    middleware.NewOriginIssuer(cfg.OriginSecret, cfg.OriginTTL),
		Health:     health,
		Log:        log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("identity_store", cfg.IdentityStore).
			Str("session_store", cfg.SessionStore).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}
