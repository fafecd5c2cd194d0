package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobbyhub/internal/repository"
)

func TestBookmarkAddExistsRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()
	userID := newTestUser(t, db, "ana@example.com", "ana")

	exists, err := repo.Exists(ctx, userID, "running")
	require.NoError(t, err)
	assert.False(t, exists)

	bookmark, err := repo.Add(ctx, userID, "running")
	require.NoError(t, err)
	assert.NotZero(t, bookmark.ID)
	assert.Equal(t, "running", bookmark.HobbyID)

	exists, err = repo.Exists(ctx, userID, "running")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Add(ctx, userID, "running")
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	require.NoError(t, repo.Remove(ctx, userID, "running"))
	exists, err = repo.Exists(ctx, userID, "running")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBookmarkRemoveAbsentIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookmarkRepository(db)
	userID := newTestUser(t, db, "ana@example.com", "ana")

	assert.NoError(t, repo.Remove(context.Background(), userID, "never-added"))
}

func TestBookmarkToggle(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()
	userID := newTestUser(t, db, "ana@example.com", "ana")

	state, err := repo.Toggle(ctx, userID, "chess")
	require.NoError(t, err)
	assert.True(t, state)

	state, err = repo.Toggle(ctx, userID, "chess")
	require.NoError(t, err)
	assert.False(t, state)

	// back to the original state after two calls
	exists, err := repo.Exists(ctx, userID, "chess")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBookmarkListByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()
	userID := newTestUser(t, db, "ana@example.com", "ana")
	otherID := newTestUser(t, db, "bob@example.com", "bob")

	for _, hobbyID := range []string{"running", "chess", "pottery"} {
		_, err := repo.Add(ctx, userID, hobbyID)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	_, err := repo.Add(ctx, otherID, "yoga")
	require.NoError(t, err)

	bookmarks, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, bookmarks, 3)

	assert.Equal(t, "pottery", bookmarks[0].HobbyID)
	assert.Equal(t, "chess", bookmarks[1].HobbyID)
	assert.Equal(t, "running", bookmarks[2].HobbyID)
	for _, b := range bookmarks {
		assert.Equal(t, userID, b.UserID)
	}
}
