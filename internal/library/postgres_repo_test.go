package library

import (
	"context"
	"testing"
	"time"

	"bookduck/internal/apperr"
	"bookduck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo(t *testing.T) {
	pool := testutil.NewPostgres(t)
	testutil.SeedGenre(t, pool, 1, "Etc")
	userID := testutil.SeedUser(t, pool, "reader@example.com", "reader")
	bookID := testutil.SeedBookInfo(t, pool, "lib-1", 1)
	otherBookID := testutil.SeedBookInfo(t, pool, "lib-2", 1)

	repo := NewPostgresRepo(pool, 5*time.Second)
	ctx := context.Background()

	ub := UserBook{UserID: userID, BookInfoID: bookID, ReadStatus: StatusReading}
	require.NoError(t, repo.Create(ctx, &ub))
	assert.NotEmpty(t, ub.ID)

	dup := UserBook{UserID: userID, BookInfoID: bookID, ReadStatus: StatusFinished}
	assert.ErrorIs(t, repo.Create(ctx, &dup), apperr.ErrAlreadyExists)

	other := UserBook{UserID: userID, BookInfoID: otherBookID, ReadStatus: StatusNotStarted}
	require.NoError(t, repo.Create(ctx, &other))

	t.Run("list filters by status", func(t *testing.T) {
		entries, total, err := repo.List(ctx, userID, StatusReading, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, entries, 1)
		assert.Equal(t, "lib-1", entries[0].Title)

		_, total, err = repo.List(ctx, userID, "", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("update status", func(t *testing.T) {
		updated, err := repo.UpdateStatus(ctx, ub.ID, StatusStopped)
		require.NoError(t, err)
		assert.Equal(t, StatusStopped, updated.ReadStatus)

		got, err := repo.GetByID(ctx, ub.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusStopped, got.ReadStatus)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, other.ID))
		assert.ErrorIs(t, repo.Delete(ctx, other.ID), apperr.ErrUserBookNotFound)

		_, err := repo.GetByID(ctx, other.ID)
		assert.ErrorIs(t, err, apperr.ErrUserBookNotFound)
	})
}
