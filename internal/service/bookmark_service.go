package service

import (
	"context"
	"errors"
	"fmt"

	"hobbyhub/internal/catalog"
	"hobbyhub/internal/domain"
	"hobbyhub/internal/repository"
)

var (
	// ErrUnknownHobby is returned when a hobby id is not in the catalog.
	// The catalog is the only referential check; there is no foreign key
	// to a table.
	ErrUnknownHobby = errors.New("hobby not found in catalog")
	// ErrAlreadyBookmarked is returned by Add when the pair exists.
	ErrAlreadyBookmarked = errors.New("hobby is already bookmarked")
	// ErrOrphanedBookmark indicates a stored bookmark references a hobby
	// id missing from the catalog. This is catalog drift and is surfaced
	// as a hard failure rather than skipped.
	ErrOrphanedBookmark = errors.New("bookmark references unknown hobby")
)

// BookmarkStats summarizes a user's bookmarks for the dashboard.
type BookmarkStats struct {
	PerCategory   map[domain.Category]int
	TotalCount    int
	CategoryCount int
}

// BookmarkService coordinates bookmark operations against storage and
// the static catalog. All operations take the authenticated user's id.
type BookmarkService interface {
	IsBookmarked(ctx context.Context, userID int64, hobbyID string) (bool, error)
	Add(ctx context.Context, userID int64, hobbyID string) (*domain.Bookmark, error)
	Remove(ctx context.Context, userID int64, hobbyID string) error
	Toggle(ctx context.Context, userID int64, hobbyID string) (bool, error)
	ListWithDetails(ctx context.Context, userID int64) ([]domain.BookmarkedHobby, error)
	Stats(ctx context.Context, userID int64) (*BookmarkStats, error)
}

type bookmarkService struct {
	bookmarks repository.BookmarkRepository
}

func NewBookmarkService(bookmarks repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks}
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, userID int64, hobbyID string) (bool, error) {
	if hobbyID == "" {
		return false, errors.New("hobby id is required")
	}
	return s.bookmarks.Exists(ctx, userID, hobbyID)
}

func (s *bookmarkService) Add(ctx context.Context, userID int64, hobbyID string) (*domain.Bookmark, error) {
	if _, ok := catalog.ByID(hobbyID); !ok {
		return nil, ErrUnknownHobby
	}

	bookmark, err := s.bookmarks.Add(ctx, userID, hobbyID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyBookmarked
		}
		return nil, err
	}
	return bookmark, nil
}

func (s *bookmarkService) Remove(ctx context.Context, userID int64, hobbyID string) error {
	if hobbyID == "" {
		return errors.New("hobby id is required")
	}
	return s.bookmarks.Remove(ctx, userID, hobbyID)
}

// Toggle delegates to the repository's insert-or-delete so the flip is a
// single storage round trip. It returns the new state.
func (s *bookmarkService) Toggle(ctx context.Context, userID int64, hobbyID string) (bool, error) {
	if _, ok := catalog.ByID(hobbyID); !ok {
		return false, ErrUnknownHobby
	}
	return s.bookmarks.Toggle(ctx, userID, hobbyID)
}

func (s *bookmarkService) ListWithDetails(ctx context.Context, userID int64) ([]domain.BookmarkedHobby, error) {
	bookmarks, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BookmarkedHobby, 0, len(bookmarks))
	for _, b := range bookmarks {
		hobby, ok := catalog.ByID(b.HobbyID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrOrphanedBookmark, b.HobbyID)
		}
		out = append(out, domain.BookmarkedHobby{
			Hobby:        hobby,
			BookmarkedAt: b.CreatedAt,
		})
	}
	return out, nil
}

func (s *bookmarkService) Stats(ctx context.Context, userID int64) (*BookmarkStats, error) {
	hobbies, err := s.ListWithDetails(ctx, userID)
	if err != nil {
		return nil, err
	}

	perCategory := make(map[domain.Category]int)
	for _, h := range hobbies {
		perCategory[h.Category]++
	}

	// Categories with no bookmarks stay absent from the map.
	return &BookmarkStats{
		PerCategory:   perCategory,
		TotalCount:    len(hobbies),
		CategoryCount: len(perCategory),
	}, nil
}
