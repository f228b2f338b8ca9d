package repository

import (
	"context"
	"time"

	"climb-feed-service/internal/entity"
)

type GymRepository struct {
	db    DBTX
	clock func() time.Time
}

func NewGymRepository(db DBTX) *GymRepository {
	return &GymRepository{db: db, clock: time.Now}
}

func (r *GymRepository) GetGyms(ctx context.Context) ([]*entity.Gym, error) {
	gyms := []*entity.Gym{}

	query := `SELECT id, name, location, created_at FROM gyms`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var gym entity.Gym
		if err := rows.Scan(&gym.ID, &gym.Name, &gym.Location, &gym.CreatedAt); err != nil {
			return nil, err
		}
		gyms = append(gyms, &gym)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *GymRepository) CreateGym(ctx context.Context, gym *entity.Gym) (*entity.Gym, error) {
	createdAt := now(r.clock)

	query := `INSERT INTO gyms (name, location, created_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, gym.Name, gym.Location, createdAt)
	if err != nil {
		return nil, classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *gym
	created.ID = int(id)
	created.CreatedAt = createdAt
	return &created, nil
}
