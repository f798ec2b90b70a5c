package repository

import (
	"context"
	"sync"
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// MemoryRateLimitRepository is an in-memory RateLimitRepository for tests
type MemoryRateLimitRepository struct {
	mu      sync.RWMutex
	records []domain.RateLimitRecord
}

// NewMemoryRateLimitRepository creates a new in-memory rate-limit repository
func NewMemoryRateLimitRepository() *MemoryRateLimitRepository {
	return &MemoryRateLimitRepository{}
}

// CountSince counts records for (sessionID, actionType) newer than since
func (r *MemoryRateLimitRepository) CountSince(ctx context.Context, sessionID, actionType string, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.records {
		if rec.SessionID == sessionID && rec.ActionType == actionType && rec.Timestamp.After(since) {
			count++
		}
	}
	return count, nil
}

// Insert appends a record
func (r *MemoryRateLimitRepository) Insert(ctx context.Context, rec *domain.RateLimitRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

// DeleteOlderThan purges records older than cutoff
func (r *MemoryRateLimitRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	for _, rec := range r.records {
		if !rec.Timestamp.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

// Len reports the number of stored records (test helper)
func (r *MemoryRateLimitRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
