package service

import (
	"context"

	"climb-feed-service/internal/dto"
	"climb-feed-service/internal/event"
)

type SessionService struct {
	repo      SessionRepository
	publisher event.Publisher
}

func NewSessionService(repo SessionRepository, publisher event.Publisher) *SessionService {
	return &SessionService{repo: repo, publisher: publisher}
}

// CreateSession stores a climbing session. UserID and GymID must reference existing rows.
func (s *SessionService) CreateSession(ctx context.Context, in *dto.SessionCreate) (*dto.SessionResponse, error) {
	session, err := s.repo.CreateSession(ctx, in.Entity())
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating session for user %d at gym %d", in.UserID, in.GymID)
		return nil, err
	}

	resp := dto.NewSessionResponse(session)
	publishCreated(ctx, s.publisher, event.KindSession, resp.ID, resp)
	return resp, nil
}

// GetTimeline returns every session with its user and gym, newest first.
func (s *SessionService) GetTimeline(ctx context.Context) ([]*dto.TimelineSession, error) {
	rows, err := s.repo.GetTimeline(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting timeline")
		return nil, err
	}

	timeline := make([]*dto.TimelineSession, 0, len(rows))
	for _, row := range rows {
		timeline = append(timeline, dto.NewTimelineSession(row))
	}
	return timeline, nil
}
