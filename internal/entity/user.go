package entity

import "time"

// User is a row of the users table. PasswordHash never leaves the service layer.
type User struct {
	ID             int
	Username       string
	PasswordHash   string
	ProfilePicture *string
	CreatedAt      time.Time
}

/*
Mysql Table

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	profile_picture VARCHAR(1024) NULL,
	created_at DATETIME(6) NOT NULL
);
*/
