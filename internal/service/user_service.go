package service

import (
	"context"

	"climb-feed-service/internal/credential"
	"climb-feed-service/internal/dto"
	"climb-feed-service/internal/entity"
	"climb-feed-service/internal/event"
)

type UserService struct {
	repo      UserRepository
	publisher event.Publisher
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo UserRepository, publisher event.Publisher) *UserService {
	return &UserService{repo: repo, publisher: publisher}
}

// GetUserByID returns nil, nil when the user does not exist.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return dto.NewUserResponse(user), nil
}

// CreateUser hashes the password and stores the user.
func (s *UserService) CreateUser(ctx context.Context, in *dto.UserCreate) (*dto.UserResponse, error) {
	hash, err := credential.Hash(in.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	createdUser, err := s.repo.CreateUser(ctx, &entity.User{
		Username:       in.Username,
		PasswordHash:   hash,
		ProfilePicture: in.ProfilePicture,
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating user %q", in.Username)
		return nil, err
	}

	resp := dto.NewUserResponse(createdUser)
	publishCreated(ctx, s.publisher, event.KindUser, resp.ID, resp)
	return resp, nil
}
