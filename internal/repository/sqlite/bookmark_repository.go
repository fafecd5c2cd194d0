package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hobbyhub/internal/domain"
	"hobbyhub/internal/repository"
)

const createBookmarksTable = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	hobby_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	UNIQUE(user_id, hobby_id)
);
`

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBookmarksTable); err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Add(ctx context.Context, userID int64, hobbyID string) (*domain.Bookmark, error) {
	bookmark := &domain.Bookmark{
		UserID:    userID,
		HobbyID:   hobbyID,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO bookmarks (user_id, hobby_id, created_at)
VALUES (?, ?, ?)`,
		bookmark.UserID,
		bookmark.HobbyID,
		bookmark.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("bookmark exists: %w", repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("bookmark last insert id: %w", err)
	}
	bookmark.ID = id
	return bookmark, nil
}

func (r *BookmarkRepository) Remove(ctx context.Context, userID int64, hobbyID string) error {
	// Deleting an absent pair is a no-op, so the affected-row count is
	// deliberately not checked.
	if _, err := r.db.ExecContext(ctx, `
DELETE FROM bookmarks
WHERE user_id = ? AND hobby_id = ?`,
		userID, hobbyID,
	); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID int64, hobbyID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(1) FROM bookmarks
WHERE user_id = ? AND hobby_id = ?`,
		userID, hobbyID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return n > 0, nil
}

// Toggle attempts the insert first and falls back to a delete on a unique
// violation, so two concurrent toggles cannot both observe "absent" and
// both insert.
func (r *BookmarkRepository) Toggle(ctx context.Context, userID int64, hobbyID string) (bool, error) {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO bookmarks (user_id, hobby_id, created_at)
VALUES (?, ?, ?)`,
		userID, hobbyID, time.Now().UTC(),
	)
	if err == nil {
		return true, nil
	}
	if !isUniqueViolation(err) {
		return false, fmt.Errorf("toggle bookmark insert: %w", err)
	}

	if err := r.Remove(ctx, userID, hobbyID); err != nil {
		return false, fmt.Errorf("toggle bookmark delete: %w", err)
	}
	return false, nil
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, hobby_id, created_at
FROM bookmarks
WHERE user_id = ?
ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.HobbyID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return bookmarks, nil
}
