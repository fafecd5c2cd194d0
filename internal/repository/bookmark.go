package repository

import (
	"context"

	"hobbyhub/internal/domain"
)

// BookmarkRepository defines persistence operations for Bookmark records.
type BookmarkRepository interface {
	Init(ctx context.Context) error
	// Add inserts the (user, hobby) pair; ErrDuplicate if it already exists.
	Add(ctx context.Context, userID int64, hobbyID string) (*domain.Bookmark, error)
	// Remove deletes the pair. Removing a pair that does not exist is not
	// an error.
	Remove(ctx context.Context, userID int64, hobbyID string) error
	// Exists reports whether the pair is present.
	Exists(ctx context.Context, userID int64, hobbyID string) (bool, error)
	// Toggle flips the pair in a single storage round trip: it attempts
	// the insert and, on a unique violation, deletes instead. The returned
	// bool is the new state.
	Toggle(ctx context.Context, userID int64, hobbyID string) (bool, error)
	// ListByUser returns the user's bookmarks, newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error)
}
