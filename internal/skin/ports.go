package skin

import "context"

type Repository interface {
	List(ctx context.Context) ([]Skin, error)
	// Get and GetEquipped return nil, nil when nothing matches.
	Get(ctx context.Context, id int64) (*Skin, error)
	GetEquipped(ctx context.Context, userID string) (*Skin, error)
}
