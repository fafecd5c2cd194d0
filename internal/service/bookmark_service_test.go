package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobbyhub/internal/domain"
	"hobbyhub/internal/repository/sqlite"
)

func newBookmarkFixture(t *testing.T) (BookmarkService, *sql.DB, int64) {
	t.Helper()

	db := newTestDB(t)
	user, err := newUserService(t, db).Register(context.Background(), "ana@example.com", "ana", "secret123")
	require.NoError(t, err)
	return NewBookmarkService(sqlite.NewBookmarkRepository(db)), db, user.ID
}

func TestBookmarkAddCheckRemove(t *testing.T) {
	svc, _, userID := newBookmarkFixture(t)
	ctx := context.Background()

	bookmarked, err := svc.IsBookmarked(ctx, userID, "running")
	require.NoError(t, err)
	assert.False(t, bookmarked)

	_, err = svc.Add(ctx, userID, "running")
	require.NoError(t, err)

	bookmarked, err = svc.IsBookmarked(ctx, userID, "running")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	_, err = svc.Add(ctx, userID, "running")
	assert.ErrorIs(t, err, ErrAlreadyBookmarked)

	require.NoError(t, svc.Remove(ctx, userID, "running"))
	bookmarked, err = svc.IsBookmarked(ctx, userID, "running")
	require.NoError(t, err)
	assert.False(t, bookmarked)

	// removing again is not an error
	assert.NoError(t, svc.Remove(ctx, userID, "running"))
}

func TestBookmarkUnknownHobby(t *testing.T) {
	svc, _, userID := newBookmarkFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, "skydiving")
	assert.ErrorIs(t, err, ErrUnknownHobby)

	_, err = svc.Toggle(ctx, userID, "skydiving")
	assert.ErrorIs(t, err, ErrUnknownHobby)
}

func TestToggleIsIdempotentOverTwoCalls(t *testing.T) {
	svc, _, userID := newBookmarkFixture(t)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, userID, "chess")
	require.NoError(t, err)
	assert.True(t, state)

	state, err = svc.Toggle(ctx, userID, "chess")
	require.NoError(t, err)
	assert.False(t, state)

	bookmarked, err := svc.IsBookmarked(ctx, userID, "chess")
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestListWithDetailsAndStats(t *testing.T) {
	svc, _, userID := newBookmarkFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, "running")
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "chess")
	require.NoError(t, err)

	hobbies, err := svc.ListWithDetails(ctx, userID)
	require.NoError(t, err)
	require.Len(t, hobbies, 2)
	for _, h := range hobbies {
		assert.NotEmpty(t, h.Title)
		assert.False(t, h.BookmarkedAt.IsZero())
	}

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCount)
	assert.Equal(t, 2, stats.CategoryCount)
	assert.Equal(t, map[domain.Category]int{
		domain.CategorySports:       1,
		domain.CategoryIntelligence: 1,
	}, stats.PerCategory)
	// zero-count categories stay absent
	_, present := stats.PerCategory[domain.CategoryArt]
	assert.False(t, present)

	require.NoError(t, svc.Remove(ctx, userID, "running"))

	stats, err = svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCount)
	assert.Equal(t, map[domain.Category]int{domain.CategoryIntelligence: 1}, stats.PerCategory)
}

func TestStatsSumMatchesListLength(t *testing.T) {
	svc, _, userID := newBookmarkFixture(t)
	ctx := context.Background()

	for _, hobbyID := range []string{"running", "yoga", "chess", "pottery"} {
		_, err := svc.Add(ctx, userID, hobbyID)
		require.NoError(t, err)
	}

	hobbies, err := svc.ListWithDetails(ctx, userID)
	require.NoError(t, err)
	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)

	sum := 0
	for _, n := range stats.PerCategory {
		sum += n
	}
	assert.Equal(t, len(hobbies), sum)
	assert.Equal(t, len(hobbies), stats.TotalCount)
}

func TestOrphanedBookmarkIsHardFailure(t *testing.T) {
	svc, db, userID := newBookmarkFixture(t)
	ctx := context.Background()

	// Bypass the service to simulate catalog drift: a stored bookmark
	// whose hobby id no longer exists.
	_, err := sqlite.NewBookmarkRepository(db).Add(ctx, userID, "retired-hobby")
	require.NoError(t, err)

	_, err = svc.ListWithDetails(ctx, userID)
	assert.ErrorIs(t, err, ErrOrphanedBookmark)

	_, err = svc.Stats(ctx, userID)
	assert.ErrorIs(t, err, ErrOrphanedBookmark)
}
