package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"climb-feed-service/internal/entity"
	"climb-feed-service/internal/event"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type UserRepository interface {
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}

type GymRepository interface {
	GetGyms(ctx context.Context) ([]*entity.Gym, error)
	CreateGym(ctx context.Context, gym *entity.Gym) (*entity.Gym, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *entity.Session) (*entity.Session, error)
	GetTimeline(ctx context.Context) ([]*entity.TimelineRow, error)
}

// publishCreated emits a "<kind>.created.<id>" event. The write has already
// committed, so a publish failure is logged and swallowed.
func publishCreated(ctx context.Context, publisher event.Publisher, kind string, id int, payload any) {
	key := event.Key(kind, "created", id)
	if err := publisher.Publish(ctx, key, payload); err != nil {
		logger.Error().Err(err).Msgf("Error publishing event %s", key)
	}
}
