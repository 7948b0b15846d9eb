package bookinfo

import (
	"context"
)

// Provider fetches raw payloads from the external book catalog.
type Provider interface {
	SearchList(ctx context.Context, keyword string, page, size int) ([]byte, error)
	SearchDetail(ctx context.Context, providerID string) ([]byte, error)
}

// Repository defines the contract for catalog storage.
type Repository interface {
	GetGenre(ctx context.Context, id int64) (Genre, error)
	// FindByProviderID returns nil, nil when no row matches.
	FindByProviderID(ctx context.Context, providerID string) (*BookInfo, error)
	GetByID(ctx context.Context, id string) (BookInfo, error)
	// Insert stores b unless its provider id already exists. It reports whether
	// a row was created and fills ID and CreatedAt when it was.
	Insert(ctx context.Context, b *BookInfo) (bool, error)
	// Delete removes the book and everything referencing it. It refuses with
	// apperr.ErrUnauthorizedRequest while users other than actorID still
	// reference the book.
	Delete(ctx context.Context, id, actorID string) error
}
