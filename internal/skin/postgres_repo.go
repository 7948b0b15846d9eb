package skin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Skin, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, skin_type, description, unlock_condition
		FROM skins
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Skin
	for rows.Next() {
		var s Skin
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Description, &s.UnlockCondition); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, id int64) (*Skin, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return scanOptional(r.db.QueryRow(ctx, `
		SELECT id, name, skin_type, description, unlock_condition
		FROM skins
		WHERE id = $1`, id))
}

func (r *PostgresRepo) GetEquipped(ctx context.Context, userID string) (*Skin, error) {
	if uuid.Validate(userID) != nil {
		return nil, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return scanOptional(r.db.QueryRow(ctx, `
		SELECT s.id, s.name, s.skin_type, s.description, s.unlock_condition
		FROM user_skins us
		JOIN skins s ON s.id = us.skin_id
		WHERE us.user_id = $1 AND us.equipped`, userID))
}

func scanOptional(row pgx.Row) (*Skin, error) {
	var s Skin
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Description, &s.UnlockCondition)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
