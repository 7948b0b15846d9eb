package excerpt

import (
	"context"

	"bookduck/internal/bookinfo"
)

type Repository interface {
	Create(ctx context.Context, e *Excerpt) error
	GetByID(ctx context.Context, id string) (Excerpt, error)
	ListByBook(ctx context.Context, userID, bookInfoID string) ([]Excerpt, error)
	Update(ctx context.Context, id, content, memo string) (Excerpt, error)
	Delete(ctx context.Context, id string) error
}

// BookLookup checks that an excerpt's book exists.
type BookLookup interface {
	Get(ctx context.Context, id string) (bookinfo.BookInfo, error)
}
