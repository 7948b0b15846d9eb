package friend

import (
	"context"

	"bookduck/internal/skin"
)

type Repository interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	// Related reports a pending request or friendship between a and b in
	// either direction.
	Related(ctx context.Context, a, b string) (bool, error)
	CreateRequest(ctx context.Context, req *Request) error
	GetRequest(ctx context.Context, id string) (Request, error)
	// Accept marks a pending request accepted and stores the friendship in
	// one transaction. It returns false when the request was not pending.
	Accept(ctx context.Context, req Request) (bool, error)
	ListFriends(ctx context.Context, userID string) ([]FriendRow, error)
	ListSent(ctx context.Context, userID string) ([]RequestUnit, error)
	ListReceived(ctx context.Context, userID string) ([]RequestUnit, error)
}

// SkinLookup resolves the skin displayed for a user.
type SkinLookup interface {
	GetEquippedSkinOrDefault(ctx context.Context, userID string) (skin.Equipped, error)
}
