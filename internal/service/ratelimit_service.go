package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
)

// RateLimitPolicy describes how many actions a session may perform per window
type RateLimitPolicy struct {
	Limit  int
	Window time.Duration
}

// Hint formats the client-facing message for an exhausted limit
func (p RateLimitPolicy) Hint(actionType string) string {
	return fmt.Sprintf("Rate limit exceeded. Maximum %d %ss per %g hour(s).",
		p.Limit, actionType, p.Window.Hours())
}

// defaultPolicies are the per-action write limits
var defaultPolicies = map[string]RateLimitPolicy{
	domain.ActionSubmission:    {Limit: 3, Window: time.Hour},
	domain.ActionCollaboration: {Limit: 2, Window: 24 * time.Hour},
}

// sweepRetention is how long ledger rows are kept; no policy window exceeds it
const sweepRetention = 24 * time.Hour

// RateLimitService enforces per-session write limits against the ledger
type RateLimitService interface {
	// Check reports whether the session may perform the action. Unknown
	// actions are always allowed. The returned message is the client-facing
	// hint when the limit is exhausted.
	Check(ctx context.Context, sessionID, actionType string) (allowed bool, message string, err error)
	// Record appends a ledger entry after a successful action
	Record(ctx context.Context, sessionID, actionType string) error
}

// rateLimitService implements RateLimitService
type rateLimitService struct {
	repo     repository.RateLimitRepository
	policies map[string]RateLimitPolicy
	log      *logger.Logger

	// sweepChance is the probability a Check triggers an async ledger sweep
	sweepChance float64
}

// NewRateLimitService creates a RateLimitService with the default policies
func NewRateLimitService(repo repository.RateLimitRepository, log *logger.Logger) RateLimitService {
	return &rateLimitService{
		repo:        repo,
		policies:    defaultPolicies,
		log:         log,
		sweepChance: 0.1,
	}
}

// Check reports whether the session may perform the action
func (s *rateLimitService) Check(ctx context.Context, sessionID, actionType string) (bool, string, error) {
	policy, ok := s.policies[actionType]
	if !ok {
		return true, "", nil
	}

	// Opportunistic cleanup keeps the ledger small without a scheduler
	if rand.Float64() < s.sweepChance {
		go s.sweep()
	}

	count, err := s.repo.CountSince(ctx, sessionID, actionType, time.Now().Add(-policy.Window))
	if err != nil {
		return false, "", err
	}
	if count >= policy.Limit {
		return false, policy.Hint(actionType), nil
	}
	return true, "", nil
}

// Record appends a ledger entry after a successful action
func (s *rateLimitService) Record(ctx context.Context, sessionID, actionType string) error {
	return s.repo.Insert(ctx, &domain.RateLimitRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		ActionType: actionType,
		Timestamp:  time.Now(),
	})
}

// sweep purges ledger rows older than the retention window. It runs off the
// request path, so failures are logged and otherwise ignored.
func (s *rateLimitService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.repo.DeleteOlderThan(ctx, time.Now().Add(-sweepRetention)); err != nil {
		s.log.Error("failed to sweep rate limit ledger", zap.Error(err))
	}
}
