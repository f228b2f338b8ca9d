// Command seed loads the demo gyms, users and sessions into an empty database.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"climb-feed-service/internal/config"
	"climb-feed-service/internal/seed"
	"climb-feed-service/migrations"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx := context.Background()
	db, err := config.OpenDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := migrations.AutoMigrate(ctx, db, 3, time.Second); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate tables")
	}

	seeded, err := seed.Seed(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Error seeding database")
	}
	if !seeded {
		log.Info().Msg("Database already has users, nothing to seed")
		return
	}
	log.Info().Msg("Database seeded successfully!")
}
