package repository

import (
	"context"
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// RateLimitRepository defines access to the append-only rate-limit ledger
type RateLimitRepository interface {
	// CountSince counts records for (sessionID, actionType) newer than since
	CountSince(ctx context.Context, sessionID, actionType string, since time.Time) (int, error)
	// Insert appends a record
	Insert(ctx context.Context, rec *domain.RateLimitRecord) error
	// DeleteOlderThan purges records older than cutoff
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}
