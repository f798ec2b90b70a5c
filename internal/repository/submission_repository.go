package repository

import (
	"context"
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// SubmissionListOptions holds the public listing controls
type SubmissionListOptions struct {
	Sort   string // recent, loved, status
	Tag    string
	Status string
	Limit  int
}

// VoteCounts carries the counters returned after a vote
type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// SubmissionRepository defines data access for submissions and their
// admin responses (responses are owned by the submission row).
type SubmissionRepository interface {
	// Create inserts a new submission
	Create(ctx context.Context, s *domain.Submission) error
	// GetByID retrieves any submission by ID, nil when missing
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	// GetPublished retrieves a submission visible to the public, nil when
	// missing or still pending
	GetPublished(ctx context.Context, id string) (*domain.Submission, error)
	// ListPublic lists published submissions for the browse feed
	ListPublic(ctx context.Context, opts SubmissionListOptions) ([]*domain.Submission, error)
	// ListPending lists the moderation queue, oldest first
	ListPending(ctx context.Context) ([]*domain.Submission, error)
	// ListPublished lists every published submission for the admin, newest first
	ListPublished(ctx context.Context) ([]*domain.Submission, error)
	// Approve transitions a pending submission to exploring, optionally
	// rewriting tags (nil keeps the submitted tags). Returns nil when the
	// row is absent or not pending.
	Approve(ctx context.Context, id string, tags []string, approvedAt time.Time) (*domain.Submission, error)
	// UpdateStatus sets a post-approval status, nil when the row is absent
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Submission, error)
	// Delete removes a submission and its responses; missing rows are not an error
	Delete(ctx context.Context, id string) error
	// IncrementVote bumps the named counter; missing rows are a silent no-op
	IncrementVote(ctx context.Context, id string, voteType string) error
	// GetVoteCounts returns the current counters, nil when the row is absent
	GetVoteCounts(ctx context.Context, id string) (*VoteCounts, error)
	// AddResponse appends an admin response
	AddResponse(ctx context.Context, r *domain.AdminResponse) error
	// ListResponses lists responses for a submission ordered by creation time
	ListResponses(ctx context.Context, submissionID string) ([]*domain.AdminResponse, error)
}
