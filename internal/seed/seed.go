// Package seed populates an empty database with demo gyms, users and sessions.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"climb-feed-service/internal/credential"
	"climb-feed-service/internal/entity"
	"climb-feed-service/internal/repository"
)

const demoPassword = "password"

var demoGyms = []entity.Gym{
	{Name: "Movement Santa Clara", Location: "Santa Clara"},
	{Name: "Movement Sunnyvale", Location: "Sunnyvale"},
	{Name: "Movement Berkeley", Location: "Berkeley"},
}

var demoUsers = []struct {
	username       string
	profilePicture string
}{
	{"alex_climber", "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face"},
	{"sarah_sends", "https://images.unsplash.com/photo-1494790108755-2616b612b77c?w=100&h=100&fit=crop&crop=face"},
	{"mike_boulder", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face"},
}

// demoSessions reference users and gyms by their position in demoUsers and demoGyms.
var demoSessions = []struct {
	user, gym int
	session   entity.Session
}{
	{user: 0, gym: 0, session: entity.Session{
		Title:           "Great bouldering session!",
		Description:     strPtr("Worked on some V4s and finally sent that crimpy overhang problem"),
		TotalSend:       8,
		RoutesClimbed:   12,
		DurationMinutes: 116,
	}},
	{user: 1, gym: 1, session: entity.Session{
		Title:           "Top rope training",
		Description:     strPtr("Focused on endurance routes and technique work"),
		TotalSend:       6,
		RoutesClimbed:   8,
		DurationMinutes: 90,
	}},
	{user: 2, gym: 0, session: entity.Session{
		Title:           "Quick lunch session",
		Description:     strPtr("Short but productive boulder session"),
		TotalSend:       4,
		RoutesClimbed:   6,
		DurationMinutes: 45,
	}},
}

func strPtr(s string) *string { return &s }

// Seed inserts the demo data in one transaction unless a user already exists.
// It reports whether anything was written.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}

	seeded, err := seed(ctx, tx)
	if err != nil || !seeded {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func seed(ctx context.Context, tx *sql.Tx) (bool, error) {
	userRepo := repository.NewUserRepository(tx)
	gymRepo := repository.NewGymRepository(tx)
	sessionRepo := repository.NewSessionRepository(tx)

	exists, err := userRepo.HasUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("check users: %w", err)
	}
	if exists {
		return false, nil
	}

	gymIDs := make([]int, 0, len(demoGyms))
	for _, g := range demoGyms {
		created, err := gymRepo.CreateGym(ctx, &g)
		if err != nil {
			return false, fmt.Errorf("create gym %q: %w", g.Name, err)
		}
		gymIDs = append(gymIDs, created.ID)
	}

	userIDs := make([]int, 0, len(demoUsers))
	for _, u := range demoUsers {
		hash, err := credential.Hash(demoPassword)
		if err != nil {
			return false, err
		}
		created, err := userRepo.CreateUser(ctx, &entity.User{
			Username:       u.username,
			PasswordHash:   hash,
			ProfilePicture: strPtr(u.profilePicture),
		})
		if err != nil {
			return false, fmt.Errorf("create user %q: %w", u.username, err)
		}
		userIDs = append(userIDs, created.ID)
	}

	for _, s := range demoSessions {
		session := s.session
		session.UserID = userIDs[s.user]
		session.GymID = gymIDs[s.gym]
		if _, err := sessionRepo.CreateSession(ctx, &session); err != nil {
			return false, fmt.Errorf("create session %q: %w", session.Title, err)
		}
	}

	return true, nil
}
