package dto

import (
	"time"

	"climb-feed-service/internal/entity"
)

// SessionCreate is the payload for logging a climbing session.
// Omitted counters default to zero.
type SessionCreate struct {
	UserID          int     `json:"user_id" validate:"required,gt=0"`
	GymID           int     `json:"gym_id" validate:"required,gt=0"`
	Title           string  `json:"title" validate:"required"`
	Description     *string `json:"description"`
	TotalSend       int     `json:"total_send" validate:"gte=0"`
	RoutesClimbed   int     `json:"routes_climbed" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
}

func (s *SessionCreate) Entity() *entity.Session {
	return &entity.Session{
		UserID:          s.UserID,
		GymID:           s.GymID,
		Title:           s.Title,
		Description:     s.Description,
		TotalSend:       s.TotalSend,
		RoutesClimbed:   s.RoutesClimbed,
		DurationMinutes: s.DurationMinutes,
	}
}

type SessionResponse struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	GymID           int       `json:"gym_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	TotalSend       int       `json:"total_send"`
	RoutesClimbed   int       `json:"routes_climbed"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewSessionResponse(s *entity.Session) *SessionResponse {
	return &SessionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		GymID:           s.GymID,
		Title:           s.Title,
		Description:     s.Description,
		TotalSend:       s.TotalSend,
		RoutesClimbed:   s.RoutesClimbed,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
	}
}

// TimelineSession is a session denormalized with its owner and gym for display.
type TimelineSession struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Description     *string        `json:"description"`
	TotalSend       int            `json:"total_send"`
	RoutesClimbed   int            `json:"routes_climbed"`
	DurationMinutes int            `json:"duration_minutes"`
	CreatedAt       time.Time      `json:"created_at"`
	User            UserInTimeline `json:"user"`
	Gym             GymInTimeline  `json:"gym"`
}

func NewTimelineSession(row *entity.TimelineRow) *TimelineSession {
	s := row.Session
	return &TimelineSession{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		TotalSend:       s.TotalSend,
		RoutesClimbed:   s.RoutesClimbed,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		User: UserInTimeline{
			ID:             row.UserID,
			Username:       row.Username,
			ProfilePicture: row.UserProfilePicture,
		},
		Gym: GymInTimeline{
			ID:       row.GymID,
			Name:     row.GymName,
			Location: row.GymLocation,
		},
	}
}
