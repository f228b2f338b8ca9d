package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"climb-feed-service/internal/api"
	"climb-feed-service/internal/config"
	"climb-feed-service/internal/event"
	"climb-feed-service/internal/idempotency"
	"climb-feed-service/internal/repository"
	"climb-feed-service/internal/seed"
	"climb-feed-service/internal/service"
	"climb-feed-service/migrations"
)

func main() {
	cfg, loaded, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if !loaded {
		log.Warn().Msg("No .env file found, using environment only")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := migrations.AutoMigrate(ctx, db, 3, time.Second); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate tables")
	}

	if cfg.SeedOnStart {
		seeded, err := seed.Seed(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
		log.Info().Bool("seeded", seeded).Msg("Seed finished")
	}

	var publisher event.Publisher = event.NopPublisher{}
	if cfg.KafkaEnabled() {
		publisher = event.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	}
	defer publisher.Close()

	var store idempotency.Store
	if cfg.RedisEnabled() {
		rdb := config.NewRedisClient(cfg.RedisAddr)
		defer rdb.Close()
		store = idempotency.NewRedisStore(rdb, idempotency.DefaultTTL)
	}

	userService := service.NewUserService(repository.NewUserRepository(db), publisher)
	gymService := service.NewGymService(repository.NewGymRepository(db), publisher)
	sessionService := service.NewSessionService(repository.NewSessionRepository(db), publisher)

	e := api.NewRouter(api.Handlers{
		Root:    api.NewRootHandler(cfg.ServiceName, db),
		User:    api.NewUserHandler(userService),
		Gym:     api.NewGymHandler(gymService),
		Session: api.NewSessionHandler(sessionService),
	}, api.RouterConfig{
		Logger:      zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.ServiceName).Logger(),
		Idempotency: store,
	})

	go func() {
		log.Info().Msgf("Starting %s on %s", cfg.ServiceName, cfg.Addr())
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}
