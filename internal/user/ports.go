package user

import (
	"context"
)

// Repository stores accounts. Lookups return apperr.ErrUserNotFound when
// nothing matches.
type Repository interface {
	// Create fills u.ID and u.CreatedAt. A taken email or nickname yields
	// apperr.ErrAlreadyExists.
	Create(ctx context.Context, u *User) error
	// GetByEmail expects an already lowercased email.
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
