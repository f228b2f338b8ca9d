package entity

import "time"

type Gym struct {
	ID        int
	Name      string
	Location  string
	CreatedAt time.Time
}
