package excerpt

import (
	"context"
	"errors"
	"time"

	"bookduck/internal/apperr"

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

const excerptColumns = `id::text, user_id::text, book_info_id::text, content, memo, created_at, updated_at`

func scanExcerpt(row pgx.Row) (Excerpt, error) {
	var e Excerpt
	err := row.Scan(&e.ID, &e.UserID, &e.BookInfoID, &e.Content, &e.Memo, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *PostgresRepo) Create(ctx context.Context, e *Excerpt) error {
	const insertSQL = `
		INSERT INTO excerpts (user_id, book_info_id, content, memo)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at, updated_at
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(ctx, insertSQL, e.UserID, e.BookInfoID, e.Content, e.Memo).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Excerpt, error) {
	if uuid.Validate(id) != nil {
		return Excerpt{}, apperr.ErrExcerptNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	e, err := scanExcerpt(r.db.QueryRow(ctx, `SELECT `+excerptColumns+` FROM excerpts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Excerpt{}, apperr.ErrExcerptNotFound
	}
	return e, err
}

func (r *PostgresRepo) ListByBook(ctx context.Context, userID, bookInfoID string) ([]Excerpt, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+excerptColumns+`
		FROM excerpts
		WHERE user_id = $1 AND book_info_id = $2
		ORDER BY created_at, id`, userID, bookInfoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Excerpt
	for rows.Next() {
		e, err := scanExcerpt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, id, content, memo string) (Excerpt, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	e, err := scanExcerpt(r.db.QueryRow(ctx, `
		UPDATE excerpts
		SET content = $2, memo = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+excerptColumns, id, content, memo))
	if errors.Is(err, pgx.ErrNoRows) {
		return Excerpt{}, apperr.ErrExcerptNotFound
	}
	return e, err
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM excerpts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrExcerptNotFound
	}
	return nil
}
