package library

import (
	"context"
	"errors"
	"time"

	"bookduck/internal/apperr"
	"bookduck/internal/platform/postgres"

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

func (r *PostgresRepo) Create(ctx context.Context, ub *UserBook) error {
	const insertSQL = `
		INSERT INTO user_books (user_id, book_info_id, read_status)
		VALUES ($1, $2, $3)
		RETURNING id::text, created_at, updated_at
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(ctx, insertSQL, ub.UserID, ub.BookInfoID, ub.ReadStatus).
		Scan(&ub.ID, &ub.CreatedAt, &ub.UpdatedAt)
	if postgres.IsUniqueViolation(err) {
		return apperr.ErrAlreadyExists.WithDetails(map[string]string{"book_info_id": ub.BookInfoID})
	}
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (UserBook, error) {
	if uuid.Validate(id) != nil {
		return UserBook{}, apperr.ErrUserBookNotFound
	}
	const selectSQL = `
		SELECT id::text, user_id::text, book_info_id::text, read_status, created_at, updated_at
		FROM user_books
		WHERE id = $1
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ub UserBook
	err := r.db.QueryRow(ctx, selectSQL, id).
		Scan(&ub.ID, &ub.UserID, &ub.BookInfoID, &ub.ReadStatus, &ub.CreatedAt, &ub.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return UserBook{}, apperr.ErrUserBookNotFound
	}
	return ub, err
}

func (r *PostgresRepo) List(ctx context.Context, userID string, status ReadStatus, limit, offset int) ([]Entry, int, error) {
	const countSQL = `
		SELECT COUNT(*)
		FROM user_books ub
		WHERE ub.user_id = $1 AND ($2::text = '' OR ub.read_status = $2)
	`
	const dataSQL = `
		SELECT ub.id::text, ub.user_id::text, ub.book_info_id::text, ub.read_status,
		       ub.created_at, ub.updated_at, b.title, b.author, b.img_path
		FROM user_books ub
		JOIN book_infos b ON b.id = ub.book_info_id
		WHERE ub.user_id = $1 AND ($2::text = '' OR ub.read_status = $2)
		ORDER BY ub.created_at DESC, ub.id
		LIMIT $3 OFFSET $4
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(ctx, countSQL, userID, string(status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, dataSQL, userID, string(status), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.BookInfoID, &e.ReadStatus,
			&e.CreatedAt, &e.UpdatedAt, &e.Title, &e.Author, &e.ImgPath,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, id string, status ReadStatus) (UserBook, error) {
	const updateSQL = `
		UPDATE user_books
		SET read_status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id::text, user_id::text, book_info_id::text, read_status, created_at, updated_at
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ub UserBook
	err := r.db.QueryRow(ctx, updateSQL, id, status).
		Scan(&ub.ID, &ub.UserID, &ub.BookInfoID, &ub.ReadStatus, &ub.CreatedAt, &ub.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return UserBook{}, apperr.ErrUserBookNotFound
	}
	return ub, err
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM user_books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrUserBookNotFound
	}
	return nil
}
