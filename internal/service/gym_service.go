package service

import (
	"context"

	"climb-feed-service/internal/dto"
	"climb-feed-service/internal/entity"
	"climb-feed-service/internal/event"
)

type GymService struct {
	repo      GymRepository
	publisher event.Publisher
}

func NewGymService(repo GymRepository, publisher event.Publisher) *GymService {
	return &GymService{repo: repo, publisher: publisher}
}

func (s *GymService) GetGyms(ctx context.Context) ([]*dto.GymResponse, error) {
	gyms, err := s.repo.GetGyms(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting gyms")
		return nil, err
	}

	return dto.NewGymResponses(gyms), nil
}

func (s *GymService) CreateGym(ctx context.Context, in *dto.GymCreate) (*dto.GymResponse, error) {
	gym, err := s.repo.CreateGym(ctx, &entity.Gym{Name: in.Name, Location: in.Location})
	if err != nil {
		logger.Error().Err(err).Msg("Error creating gym")
		return nil, err
	}

	resp := dto.NewGymResponse(gym)
	publishCreated(ctx, s.publisher, event.KindGym, resp.ID, resp)
	return resp, nil
}
