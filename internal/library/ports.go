package library

import (
	"context"

	"bookduck/internal/bookinfo"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=library

// Repository defines the contract for library storage.
type Repository interface {
	// Create fills ID and timestamps. It returns apperr.ErrAlreadyExists when
	// the user already has the book.
	Create(ctx context.Context, ub *UserBook) error
	GetByID(ctx context.Context, id string) (UserBook, error)
	// List filters by status unless it is empty.
	List(ctx context.Context, userID string, status ReadStatus, limit, offset int) ([]Entry, int, error)
	UpdateStatus(ctx context.Context, id string, status ReadStatus) (UserBook, error)
	Delete(ctx context.Context, id string) error
}

// Catalog resolves the books a library entry points at.
type Catalog interface {
	Get(ctx context.Context, id string) (bookinfo.BookInfo, error)
	FindByProviderID(ctx context.Context, providerID string) (*bookinfo.BookInfo, error)
	SaveAPIBookInfo(ctx context.Context, req bookinfo.SaveRequest) (bookinfo.BookInfo, error)
}
