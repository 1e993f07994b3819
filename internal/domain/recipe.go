package domain

import "time"

// Recipe belongs to exactly one User via UserID.
type Recipe struct {
	ID                int64
	Title             string
	Instructions      string
	MinutesToComplete int
	UserID            int64

	CreatedAt time.Time

	// Owner is populated on reads that join the users table.
	Owner *User
}
