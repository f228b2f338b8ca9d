package repository

import (
	"context"
	"time"

	"climb-feed-service/internal/entity"
)

type SessionRepository struct {
	db    DBTX
	clock func() time.Time
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db, clock: time.Now}
}

// CreateSession inserts a climbing session. The caller supplies UserID and GymID;
// if either does not exist the insert fails with ErrForeignKeyViolation and no row is written.
func (r *SessionRepository) CreateSession(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	createdAt := now(r.clock)

	query := `
		INSERT INTO sessions (user_id, gym_id, title, description, total_send, routes_climbed, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		session.UserID, session.GymID, session.Title, session.Description,
		session.TotalSend, session.RoutesClimbed, session.DurationMinutes, createdAt)
	if err != nil {
		return nil, classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *session
	created.ID = int(id)
	created.CreatedAt = createdAt
	return &created, nil
}

// GetTimeline joins every session with its owner and gym, newest first.
// Sessions created in the same instant are ordered by descending id.
func (r *SessionRepository) GetTimeline(ctx context.Context) ([]*entity.TimelineRow, error) {
	timeline := []*entity.TimelineRow{}

	query := `
		SELECT s.id, s.user_id, s.gym_id, s.title, s.description, s.total_send, s.routes_climbed, s.duration_minutes, s.created_at,
			u.id, u.username, u.profile_picture,
			g.id, g.name, g.location
		FROM sessions s
		INNER JOIN users u ON u.id = s.user_id
		INNER JOIN gyms g ON g.id = s.gym_id
		ORDER BY s.created_at DESC, s.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row entity.TimelineRow
		s := &row.Session
		err := rows.Scan(
			&s.ID, &s.UserID, &s.GymID, &s.Title, &s.Description, &s.TotalSend, &s.RoutesClimbed, &s.DurationMinutes, &s.CreatedAt,
			&row.UserID, &row.Username, &row.UserProfilePicture,
			&row.GymID, &row.GymName, &row.GymLocation,
		)
		if err != nil {
			return nil, err
		}
		timeline = append(timeline, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timeline, nil
}
