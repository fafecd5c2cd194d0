package domain

import "time"

// Bookmark associates a user with a catalog hobby id. The pair
// (UserID, HobbyID) is unique; the record has no meaning on its own.
type Bookmark struct {
	ID        int64
	UserID    int64
	HobbyID   string
	CreatedAt time.Time
}
