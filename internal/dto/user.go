package dto

import (
	"time"

	"climb-feed-service/internal/entity"
)

type UserCreate struct {
	Username       string  `json:"username" validate:"required"`
	Password       string  `json:"password" validate:"required,maxbytes=72"`
	ProfilePicture *string `json:"profile_picture"`
}

type UserResponse struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserInTimeline is the user projection embedded in timeline entries.
type UserInTimeline struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture"`
}

func NewUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}
