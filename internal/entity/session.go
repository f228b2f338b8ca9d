package entity

import "time"

// Session is a single climbing session logged by a user at a gym.
type Session struct {
	ID              int
	UserID          int
	GymID           int
	Title           string
	Description     *string
	TotalSend       int
	RoutesClimbed   int
	DurationMinutes int
	CreatedAt       time.Time
}

// TimelineRow is one row of the sessions/users/gyms join backing the timeline.
type TimelineRow struct {
	Session Session

	UserID             int
	Username           string
	UserProfilePicture *string

	GymID       int
	GymName     string
	GymLocation string
}
