package user

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

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (email, nickname, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id::text, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(timeoutCtx, query, u.Email, u.Nickname, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
	if postgres.IsUniqueViolation(err) {
		return apperr.ErrAlreadyExists.WithDetails(map[string]string{"reason": "email or nickname already in use"})
	}
	return err
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
	SELECT id::text, email, nickname, password_hash, created_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	if uuid.Validate(id) != nil {
		return User{}, apperr.ErrUserNotFound
	}
	const query = `
	SELECT id::text, email, nickname, password_hash, created_at
	FROM users
	WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, arg any) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u User
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(&u.ID, &u.Email, &u.Nickname, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, apperr.ErrUserNotFound
	}
	return u, err
}
