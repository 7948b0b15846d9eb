package friend

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookduck/internal/apperr"
	"bookduck/internal/skin"
	"bookduck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_AcceptFlow(t *testing.T) {
	pool := testutil.NewPostgres(t)
	ctx := context.Background()
	alice := testutil.SeedUser(t, pool, "alice@example.com", "alice")
	bob := testutil.SeedUser(t, pool, "bob@example.com", "bob")
	carol := testutil.SeedUser(t, pool, "carol@example.com", "carol")

	repo := NewPostgresRepo(pool, 5*time.Second)
	svc := NewService(repo, skin.NewService(skin.NewPostgresRepo(pool, 5*time.Second), 0), nil)

	req, err := svc.SendFriendRequest(ctx, alice, bob)
	require.NoError(t, err)

	_, err = svc.SendFriendRequest(ctx, bob, alice)
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)

	sent, err := svc.ListSentRequests(ctx, alice)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "bob", sent[0].Nickname)

	received, err := svc.ListReceivedRequests(ctx, bob)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "alice", received[0].Nickname)

	t.Run("non receiver leaves request pending", func(t *testing.T) {
		assert.ErrorIs(t, svc.AcceptFriendRequest(ctx, carol, req.ID), apperr.ErrUnauthorizedRequest)

		got, err := repo.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, got.Status)
	})

	t.Run("concurrent accepts create one friendship", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = svc.AcceptFriendRequest(ctx, bob, req.ID)
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		require.NoError(t, svc.AcceptFriendRequest(ctx, bob, req.ID))

		var count int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT count(*) FROM friends WHERE user1_id = $1 AND user2_id = $2`, bob, alice).Scan(&count))
		assert.Equal(t, 1, count)

		got, err := repo.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, got.Status)
	})

	t.Run("friend list of the accepter", func(t *testing.T) {
		units, err := svc.GetFriendList(ctx, bob)
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, alice, units[0].UserID)
		assert.Equal(t, "alice", units[0].Nickname)
		assert.True(t, units[0].Skin.IsDefault)

		units, err = svc.GetFriendList(ctx, carol)
		require.NoError(t, err)
		assert.Empty(t, units)
	})

	t.Run("missing request", func(t *testing.T) {
		err := svc.AcceptFriendRequest(ctx, bob, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, apperr.ErrFriendRequestNotFound)
	})
}

func TestPostgresRepo_OnePendingRequestPerPair(t *testing.T) {
	pool := testutil.NewPostgres(t)
	ctx := context.Background()
	dana := testutil.SeedUser(t, pool, "dana@example.com", "dana")
	eve := testutil.SeedUser(t, pool, "eve@example.com", "eve")
	finn := testutil.SeedUser(t, pool, "finn@example.com", "finn")

	repo := NewPostgresRepo(pool, 5*time.Second)

	t.Run("crossed request is rejected by the store", func(t *testing.T) {
		require.NoError(t, repo.CreateRequest(ctx, &Request{SenderID: dana, ReceiverID: eve, Status: StatusPending}))

		err := repo.CreateRequest(ctx, &Request{SenderID: eve, ReceiverID: dana, Status: StatusPending})
		assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	})

	t.Run("racing sends create one request", func(t *testing.T) {
		svc := NewService(repo, skin.NewService(skin.NewPostgresRepo(pool, 5*time.Second), 0), nil)

		var wg sync.WaitGroup
		errs := make([]error, 6)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				from, to := dana, finn
				if i%2 == 1 {
					from, to = finn, dana
				}
				_, errs[i] = svc.SendFriendRequest(ctx, from, to)
			}(i)
		}
		wg.Wait()

		created := 0
		for _, err := range errs {
			if err == nil {
				created++
				continue
			}
			assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
		}
		assert.Equal(t, 1, created)

		var count int
		require.NoError(t, pool.QueryRow(ctx, `
			SELECT count(*) FROM friend_requests
			WHERE status = 'PENDING'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))`,
			dana, finn).Scan(&count))
		assert.Equal(t, 1, count)
	})
}
