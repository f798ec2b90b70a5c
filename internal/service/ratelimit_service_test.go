package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
)

func newRateLimitService(t *testing.T) (*rateLimitService, *repository.MemoryRateLimitRepository) {
	t.Helper()
	log, err := logger.New(logger.DefaultConfig())
	require.NoError(t, err)

	repo := repository.NewMemoryRateLimitRepository()
	svc := NewRateLimitService(repo, log).(*rateLimitService)
	svc.sweepChance = 0 // keep tests deterministic
	return svc, repo
}

func TestRateLimitService_AllowsUnderLimit(t *testing.T) {
	svc, _ := newRateLimitService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, msg, err := svc.Check(ctx, "sess-1", domain.ActionSubmission)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Empty(t, msg)
		require.NoError(t, svc.Record(ctx, "sess-1", domain.ActionSubmission))
	}
}

func TestRateLimitService_BlocksAtLimit(t *testing.T) {
	svc, _ := newRateLimitService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(ctx, "sess-1", domain.ActionSubmission))
	}

	allowed, msg, err := svc.Check(ctx, "sess-1", domain.ActionSubmission)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "Rate limit exceeded. Maximum 3 submissions per 1 hour(s).", msg)
}

func TestRateLimitService_CollaborationLimit(t *testing.T) {
	svc, _ := newRateLimitService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.Record(ctx, "sess-1", domain.ActionCollaboration))
	}

	allowed, msg, err := svc.Check(ctx, "sess-1", domain.ActionCollaboration)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "Rate limit exceeded. Maximum 2 collaborations per 24 hour(s).", msg)
}

func TestRateLimitService_SessionsAreIndependent(t *testing.T) {
	svc, _ := newRateLimitService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(ctx, "sess-1", domain.ActionSubmission))
	}

	allowed, _, err := svc.Check(ctx, "sess-2", domain.ActionSubmission)
	require.NoError(t, err)
	assert.True(t, allowed, "another session keeps its own budget")
}

func TestRateLimitService_ActionsAreIndependent(t *testing.T) {
	svc, _ := newRateLimitService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(ctx, "sess-1", domain.ActionSubmission))
	}

	allowed, _, err := svc.Check(ctx, "sess-1", domain.ActionCollaboration)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitService_UnknownActionAllowed(t *testing.T) {
	svc, _ := newRateLimitService(t)

	allowed, msg, err := svc.Check(context.Background(), "sess-1", "unknown-action")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Empty(t, msg)
}

func TestRateLimitService_OldRecordsExpire(t *testing.T) {
	svc, repo := newRateLimitService(t)
	ctx := context.Background()

	// three submissions just outside the hour window
	stale := time.Now().Add(-61 * time.Minute)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Insert(ctx, &domain.RateLimitRecord{
			ID:         "old",
			SessionID:  "sess-1",
			ActionType: domain.ActionSubmission,
			Timestamp:  stale,
		}))
	}

	allowed, _, err := svc.Check(ctx, "sess-1", domain.ActionSubmission)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitService_Sweep(t *testing.T) {
	svc, repo := newRateLimitService(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.RateLimitRecord{
		ID:         "ancient",
		SessionID:  "sess-1",
		ActionType: domain.ActionSubmission,
		Timestamp:  time.Now().Add(-25 * time.Hour),
	}))
	require.NoError(t, svc.Record(ctx, "sess-1", domain.ActionSubmission))

	svc.sweep()

	assert.Equal(t, 1, repo.Len(), "only the fresh record survives the sweep")
}
