package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var tables = []struct {
	name  string
	query string
}{
	{
		name: "users",
		query: `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			profile_picture VARCHAR(1024) NULL,
			created_at DATETIME(6) NOT NULL,
			UNIQUE KEY users_username_idx (username)
		) ENGINE=InnoDB;
	`,
	},
	{
		name: "gyms",
		query: `
		CREATE TABLE IF NOT EXISTS gyms (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL,
			created_at DATETIME(6) NOT NULL
		) ENGINE=InnoDB;
	`,
	},
	{
		name: "sessions",
		query: `
		CREATE TABLE IF NOT EXISTS sessions (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			gym_id INT NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NULL,
			total_send INT NOT NULL DEFAULT 0,
			routes_climbed INT NOT NULL DEFAULT 0,
			duration_minutes INT NOT NULL,
			created_at DATETIME(6) NOT NULL,
			INDEX sessions_created_at_idx (created_at),
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (gym_id) REFERENCES gyms(id)
		) ENGINE=InnoDB;
	`,
	},
}

// AutoMigrate creates the users, gyms and sessions tables if they do not exist.
// Parents are created before sessions so the foreign keys resolve.
func AutoMigrate(ctx context.Context, db *sql.DB, retries int, interval time.Duration) error {
	for _, table := range tables {
		_, err := db.ExecContext(ctx, table.query)
		// Retry creating the table
		for i := 0; err != nil && i < retries; i++ {
			select {
			case <-ctx.Done():
				return fmt.Errorf("migrate %s table: %w", table.name, ctx.Err())
			case <-time.After(interval):
			}
			_, err = db.ExecContext(ctx, table.query)
		}
		if err != nil {
			return fmt.Errorf("migrate %s table: %w", table.name, err)
		}
	}
	return nil
}
