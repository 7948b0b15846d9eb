package friend

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

func (r *PostgresRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	if uuid.Validate(userID) != nil {
		return false, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) Related(ctx context.Context, a, b string) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM friend_requests
			WHERE status = 'PENDING'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		) OR EXISTS(
			SELECT 1 FROM friends
			WHERE (user1_id = $1 AND user2_id = $2) OR (user1_id = $2 AND user2_id = $1)
		)
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var related bool
	err := r.db.QueryRow(ctx, query, a, b).Scan(&related)
	return related, err
}

func (r *PostgresRepo) CreateRequest(ctx context.Context, req *Request) error {
	const insertSQL = `
		INSERT INTO friend_requests (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING id::text, created_at, updated_at
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(ctx, insertSQL, req.SenderID, req.ReceiverID, req.Status).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	// At most one pending request per pair, whichever side sent it.
	if postgres.IsUniqueViolation(err) {
		return apperr.ErrAlreadyExists
	}
	return err
}

func (r *PostgresRepo) GetRequest(ctx context.Context, id string) (Request, error) {
	if uuid.Validate(id) != nil {
		return Request{}, apperr.ErrFriendRequestNotFound
	}
	const selectSQL = `
		SELECT id::text, sender_id::text, receiver_id::text, status, created_at, updated_at
		FROM friend_requests
		WHERE id = $1
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var req Request
	err := r.db.QueryRow(ctx, selectSQL, id).
		Scan(&req.ID, &req.SenderID, &req.ReceiverID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, apperr.ErrFriendRequestNotFound
	}
	return req, err
}

func (r *PostgresRepo) Accept(ctx context.Context, req Request) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE friend_requests
		SET status = 'ACCEPTED', updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'`, req.ID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO friends (user1_id, user2_id)
		VALUES ($1, $2)
		ON CONFLICT (user1_id, user2_id) DO NOTHING`, req.ReceiverID, req.SenderID); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepo) ListFriends(ctx context.Context, userID string) ([]FriendRow, error) {
	const query = `
		SELECT f.id::text, f.user1_id::text, f.user2_id::text, f.created_at, u.nickname
		FROM friends f
		JOIN users u ON u.id = f.user2_id
		WHERE f.user1_id = $1
		ORDER BY f.created_at, f.id
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FriendRow
	for rows.Next() {
		var f FriendRow
		if err := rows.Scan(&f.ID, &f.User1ID, &f.User2ID, &f.CreatedAt, &f.Nickname); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListSent(ctx context.Context, userID string) ([]RequestUnit, error) {
	return r.listRequests(ctx, `
		SELECT fr.id::text, u.nickname, fr.status
		FROM friend_requests fr
		JOIN users u ON u.id = fr.receiver_id
		WHERE fr.sender_id = $1
		ORDER BY fr.created_at, fr.id`, userID)
}

func (r *PostgresRepo) ListReceived(ctx context.Context, userID string) ([]RequestUnit, error) {
	return r.listRequests(ctx, `
		SELECT fr.id::text, u.nickname, fr.status
		FROM friend_requests fr
		JOIN users u ON u.id = fr.sender_id
		WHERE fr.receiver_id = $1
		ORDER BY fr.created_at, fr.id`, userID)
}

func (r *PostgresRepo) listRequests(ctx context.Context, query, userID string) ([]RequestUnit, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RequestUnit
	for rows.Next() {
		var u RequestUnit
		if err := rows.Scan(&u.RequestID, &u.Nickname, &u.Status); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
