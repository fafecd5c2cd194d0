package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// service layer.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
