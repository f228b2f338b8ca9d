package dto

import (
	"time"

	"climb-feed-service/internal/entity"
)

type GymCreate struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type GymResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// GymInTimeline is the gym projection embedded in timeline entries.
type GymInTimeline struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func NewGymResponse(g *entity.Gym) *GymResponse {
	return &GymResponse{
		ID:        g.ID,
		Name:      g.Name,
		Location:  g.Location,
		CreatedAt: g.CreatedAt,
	}
}

func NewGymResponses(gyms []*entity.Gym) []*GymResponse {
	out := make([]*GymResponse, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, NewGymResponse(g))
	}
	return out
}
