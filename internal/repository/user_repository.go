package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"climb-feed-service/internal/entity"
)

type UserRepository struct {
	db    DBTX
	clock func() time.Time
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db, clock: time.Now}
}

// GetUserByID returns nil, nil when no user has the given id.
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	query := `SELECT id, username, password_hash, profile_picture, created_at FROM users WHERE id = ?`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.ProfilePicture, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUser inserts the user and returns it with its generated id and creation time.
// A taken username yields ErrUniqueViolation.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	createdAt := now(r.clock)

	query := `INSERT INTO users (username, password_hash, profile_picture, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash, user.ProfilePicture, createdAt)
	if err != nil {
		return nil, classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *user
	created.ID = int(id)
	created.CreatedAt = createdAt
	return &created, nil
}

func (r *UserRepository) HasUsers(ctx context.Context) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users)`
	if err := r.db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
