package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// OpenDB connects to MySQL, retrying until the server answers a ping.
func OpenDB(ctx context.Context, c DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", c.DSN())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)

	attempts := max(c.ConnectRetries, 1)
	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			log.Info().Msgf("Connected to DB %s", c.Name)
			return db, nil
		}
		log.Warn().Err(err).Msgf("Retry %d: Failed to connect to DB %s (%s:%s)", i+1, c.Name, c.Host, c.Port)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(c.RetryInterval):
		}
	}
	db.Close()
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %w", c.Name, c.Host, c.Port, err)
}
