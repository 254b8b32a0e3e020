package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cvhub/internal/ai"
	"cvhub/internal/config"
	"cvhub/internal/database"
	"cvhub/internal/server"
	"cvhub/internal/services"
	"cvhub/internal/storage"
	"cvhub/internal/translation"
	"cvhub/pkg/rabbitmq"
	"cvhub/pkg/redis"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogger(cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	deps, cleanup, err := buildDeps(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize dependencies")
	}
	defer cleanup()

	app := server.New(cfg, deps)

	// --- Start HTTP Server ---
	log.Info().Str("port", cfg.AppPort).Str("app", cfg.AppName).Msg("Starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info().Msg("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Error during Fiber shutdown")
	}
	log.Info().Msg("Server gracefully stopped")
}

func setupLogger(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// buildDeps connects every configured backend. Optional backends that are not
// configured stay nil; the returned cleanup closes whatever was opened.
func buildDeps(ctx context.Context, cfg *config.Config) (server.Deps, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		return server.Deps{}, cleanup, err
	}
	if err := database.Migrate(db); err != nil {
		return server.Deps{}, cleanup, err
	}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, func() { sqlDB.Close() })
	}
	deps := server.Deps{DB: db}

	// --- Object storage ---
	store, err := storage.New(ctx, cfg)
	switch {
	case err == nil:
		deps.Store = store
	case errors.Is(err, storage.ErrNotConfigured):
		log.Warn().Err(err).Msg("Object storage disabled, share links and profile pictures will fail")
	default:
		return deps, cleanup, err
	}

	// --- Share link lock ---
	if cfg.RedisURL != "" {
		client, err := redis.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { client.Close() })
		deps.Locker = redis.NewLocker(client, "cvhub:lock:", services.ShareLinkLockTTL)
		log.Info().Msg("Using redis for share link locking")
	}

	// --- Events ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			// events are advisory, the API works without them
			log.Warn().Err(err).Msg("RabbitMQ unavailable, domain events disabled")
		} else {
			closers = append(closers, func() { mqClient.Close() })
			deps.Events = mqClient
		}
	}

	// --- LLM ---
	if cfg.GroqAPIKey != "" {
		completer, err := ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqAPIURL, cfg.UpstreamTimeout)
		if err != nil {
			return deps, cleanup, err
		}
		deps.Completer = completer
	}

	// --- Translation providers ---
	if cfg.TranslationServiceURL != "" {
		internal, err := translation.NewInternalClient(cfg.TranslationServiceURL, cfg.UpstreamTimeout)
		if err != nil {
			return deps, cleanup, err
		}
		deps.InternalTranslator = internal
	}
	if cfg.ExternalTranslationAPIKey != "" {
		external, err := translation.NewExternalClient(cfg.ExternalTranslationAPIURL, cfg.ExternalTranslationAPIKey, cfg.UpstreamTimeout)
		if err != nil {
			return deps, cleanup, err
		}
		deps.ExternalTranslator = external
	}

	return deps, cleanup, nil
}
