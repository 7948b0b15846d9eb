package bookinfo

import (
	"context"
	"errors"
	"time"

	"bookduck/internal/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const referencedByOthersSQL = `
	SELECT EXISTS(SELECT 1 FROM user_books WHERE book_info_id = $1 AND user_id::text <> $2)
	    OR EXISTS(SELECT 1 FROM excerpts WHERE book_info_id = $1 AND user_id::text <> $2)
`

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

const bookInfoColumns = `id::text, provider_id, title, author, publisher, publish_date,
	description, category, page_count, img_path, language, genre_id, created_at`

func scanBookInfo(row pgx.Row) (BookInfo, error) {
	var b BookInfo
	err := row.Scan(
		&b.ID, &b.ProviderID, &b.Title, &b.Author, &b.Publisher, &b.PublishDate,
		&b.Description, &b.Category, &b.PageCount, &b.ImgPath, &b.Language, &b.GenreID, &b.CreatedAt,
	)
	return b, err
}

func (r *PostgresRepo) GetGenre(ctx context.Context, id int64) (Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var g Genre
	err := r.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Genre{}, apperr.ErrGenreNotFound
	}
	return g, err
}

func (r *PostgresRepo) FindByProviderID(ctx context.Context, providerID string) (*BookInfo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBookInfo(r.db.QueryRow(ctx,
		`SELECT `+bookInfoColumns+` FROM book_infos WHERE provider_id = $1`, providerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (BookInfo, error) {
	if uuid.Validate(id) != nil {
		return BookInfo{}, apperr.ErrBookInfoNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBookInfo(r.db.QueryRow(ctx,
		`SELECT `+bookInfoColumns+` FROM book_infos WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return BookInfo{}, apperr.ErrBookInfoNotFound
	}
	return b, err
}

const insertBookInfoSQL = `
INSERT INTO book_infos (provider_id, title, author, publisher, publish_date,
	description, category, page_count, img_path, language, genre_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (provider_id) DO NOTHING
RETURNING id::text, created_at`

func (r *PostgresRepo) Insert(ctx context.Context, b *BookInfo) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(ctx, insertBookInfoSQL,
		b.ProviderID, b.Title, b.Author, b.Publisher, b.PublishDate,
		b.Description, b.Category, b.PageCount, b.ImgPath, b.Language, b.GenreID,
	).Scan(&b.ID, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes excerpts, then library entries, then the book itself in
// one transaction. The book row stays locked until commit so no new
// reference can slip in between the check and the delete.
func (r *PostgresRepo) Delete(ctx context.Context, id, actorID string) error {
	if uuid.Validate(id) != nil {
		return apperr.ErrBookInfoNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var locked int
	err = tx.QueryRow(ctx, `SELECT 1 FROM book_infos WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrBookInfoNotFound
	}
	if err != nil {
		return err
	}

	var shared bool
	if err := tx.QueryRow(ctx, referencedByOthersSQL, id, actorID).Scan(&shared); err != nil {
		return err
	}
	if shared {
		return apperr.ErrUnauthorizedRequest.WithDetails(map[string]string{
			"book_info_id": id,
			"reason":       "book is still in other users' libraries or excerpts",
		})
	}

	if _, err := tx.Exec(ctx, `DELETE FROM excerpts WHERE book_info_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_books WHERE book_info_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM book_infos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrBookInfoNotFound
	}
	return tx.Commit(ctx)
}
