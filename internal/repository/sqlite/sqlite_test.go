package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hobbyhub/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, NewUserRepository(db).Init(context.Background()))
	require.NoError(t, NewBookmarkRepository(db).Init(context.Background()))
	return db
}

func newTestUser(t *testing.T, db *sql.DB, email, username string) int64 {
	t.Helper()

	id, err := NewUserRepository(db).Create(context.Background(), &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return id
}
