package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// PostgresRateLimitRepository implements RateLimitRepository using PostgreSQL
type PostgresRateLimitRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRateLimitRepository creates a new PostgresRateLimitRepository
func NewPostgresRateLimitRepository(pool *pgxpool.Pool) *PostgresRateLimitRepository {
	return &PostgresRateLimitRepository{pool: pool}
}

// CountSince counts records for (sessionID, actionType) newer than since
func (r *PostgresRateLimitRepository) CountSince(ctx context.Context, sessionID, actionType string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM rate_limits
		WHERE session_id = $1 AND action_type = $2 AND ts > $3
	`
	var count int
	err := r.pool.QueryRow(ctx, query, sessionID, actionType, since).Scan(&count)
	return count, err
}

// Insert appends a record
func (r *PostgresRateLimitRepository) Insert(ctx context.Context, rec *domain.RateLimitRecord) error {
	query := `
		INSERT INTO rate_limits (id, session_id, action_type, ts)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, rec.ID, rec.SessionID, rec.ActionType, rec.Timestamp)
	return err
}

// DeleteOlderThan purges records older than cutoff
func (r *PostgresRateLimitRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM rate_limits WHERE ts < $1`, cutoff)
	return err
}
