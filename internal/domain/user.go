package domain

import "time"

// User is the domain entity for a user account.
// PasswordHash never leaves the service layer; anything outward-facing
// goes through the dto projections.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	ImageURL     *string
	Bio          *string
	CreatedAt    time.Time
}
