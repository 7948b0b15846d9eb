package friend

import (
	"context"
	"testing"

	"bookduck/internal/apperr"
	"bookduck/internal/skin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Related(ctx context.Context, a, b string) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) CreateRequest(ctx context.Context, req *Request) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockRepo) GetRequest(ctx context.Context, id string) (Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Request), args.Error(1)
}

func (m *mockRepo) Accept(ctx context.Context, req Request) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListFriends(ctx context.Context, userID string) ([]FriendRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FriendRow), args.Error(1)
}

func (m *mockRepo) ListSent(ctx context.Context, userID string) ([]RequestUnit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RequestUnit), args.Error(1)
}

func (m *mockRepo) ListReceived(ctx context.Context, userID string) ([]RequestUnit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RequestUnit), args.Error(1)
}

type mockSkins struct {
	mock.Mock
}

func (m *mockSkins) GetEquippedSkinOrDefault(ctx context.Context, userID string) (skin.Equipped, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(skin.Equipped), args.Error(1)
}

func TestService_AcceptFriendRequest(t *testing.T) {
	ctx := context.Background()
	pending := Request{ID: "r1", SenderID: "A", ReceiverID: "B", Status: StatusPending}

	t.Run("receiver accepts", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("GetRequest", ctx, "r1").Return(pending, nil).Once()
		repo.On("Accept", ctx, pending).Return(true, nil).Once()

		require.NoError(t, svc.AcceptFriendRequest(ctx, "B", "r1"))
		repo.AssertExpectations(t)
	})

	t.Run("second accept is a no-op", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		accepted := pending
		accepted.Status = StatusAccepted
		repo.On("GetRequest", ctx, "r1").Return(accepted, nil).Once()
		repo.On("Accept", ctx, accepted).Return(false, nil).Once()

		require.NoError(t, svc.AcceptFriendRequest(ctx, "B", "r1"))
	})

	t.Run("sender cannot accept", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("GetRequest", ctx, "r1").Return(pending, nil).Once()

		err := svc.AcceptFriendRequest(ctx, "A", "r1")
		assert.ErrorIs(t, err, apperr.ErrUnauthorizedRequest)
		repo.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("missing request", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("GetRequest", ctx, "nope").Return(Request{}, apperr.ErrFriendRequestNotFound).Once()

		err := svc.AcceptFriendRequest(ctx, "B", "nope")
		assert.ErrorIs(t, err, apperr.ErrFriendRequestNotFound)
	})
}

func TestService_SendFriendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending request", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("UserExists", ctx, "B").Return(true, nil).Once()
		repo.On("Related", ctx, "A", "B").Return(false, nil).Once()
		repo.On("CreateRequest", ctx, mock.MatchedBy(func(r *Request) bool {
			return r.SenderID == "A" && r.ReceiverID == "B" && r.Status == StatusPending
		})).Return(nil).Once()

		req, err := svc.SendFriendRequest(ctx, "A", "B")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, req.Status)
		repo.AssertExpectations(t)
	})

	t.Run("self request", func(t *testing.T) {
		svc := NewService(new(mockRepo), new(mockSkins), nil)
		_, err := svc.SendFriendRequest(ctx, "A", "A")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("UserExists", ctx, "Z").Return(false, nil).Once()

		_, err := svc.SendFriendRequest(ctx, "A", "Z")
		assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	})

	t.Run("already related", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("UserExists", ctx, "B").Return(true, nil).Once()
		repo.On("Related", ctx, "A", "B").Return(true, nil).Once()

		_, err := svc.SendFriendRequest(ctx, "A", "B")
		assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	})
}

func TestService_GetFriendList(t *testing.T) {
	ctx := context.Background()

	t.Run("enriches with skins", func(t *testing.T) {
		repo, skins := new(mockRepo), new(mockSkins)
		svc := NewService(repo, skins, nil)
		repo.On("ListFriends", ctx, "B").Return([]FriendRow{
			{Friend: Friend{ID: "f1", User1ID: "B", User2ID: "A"}, Nickname: "alice"},
			{Friend: Friend{ID: "f2", User1ID: "B", User2ID: "C"}, Nickname: "carol"},
		}, nil).Once()
		skins.On("GetEquippedSkinOrDefault", ctx, "A").Return(skin.Equipped{SkinID: 2, Name: "Pirate"}, nil).Once()
		skins.On("GetEquippedSkinOrDefault", ctx, "C").Return(skin.Equipped{IsDefault: true}, nil).Once()

		units, err := svc.GetFriendList(ctx, "B")
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "alice", units[0].Nickname)
		assert.Equal(t, "Pirate", units[0].Skin.Name)
		assert.True(t, units[1].Skin.IsDefault)
	})

	t.Run("no friends", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, new(mockSkins), nil)
		repo.On("ListFriends", ctx, "B").Return(nil, nil).Once()

		units, err := svc.GetFriendList(ctx, "B")
		require.NoError(t, err)
		assert.NotNil(t, units)
		assert.Empty(t, units)
	})
}

func TestService_ListRequests(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := NewService(repo, new(mockSkins), nil)

	repo.On("ListSent", ctx, "A").Return([]RequestUnit{{RequestID: "r1", Nickname: "bob", Status: StatusPending}}, nil).Once()
	repo.On("ListReceived", ctx, "A").Return(nil, nil).Once()

	sent, err := svc.ListSentRequests(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, "bob", sent[0].Nickname)

	received, err := svc.ListReceivedRequests(ctx, "A")
	require.NoError(t, err)
	assert.NotNil(t, received)
}
