package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// MemorySubmissionRepository is an in-memory SubmissionRepository used by
// service and handler tests.
type MemorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions map[string]*domain.Submission
	responses   map[string][]*domain.AdminResponse
}

// NewMemorySubmissionRepository creates a new in-memory submission repository
func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{
		submissions: make(map[string]*domain.Submission),
		responses:   make(map[string][]*domain.AdminResponse),
	}
}

func copySubmission(s *domain.Submission) *domain.Submission {
	c := *s
	c.Tags = append([]string(nil), s.Tags...)
	if s.ApprovedAt != nil {
		t := *s.ApprovedAt
		c.ApprovedAt = &t
	}
	return &c
}

// Create inserts a new submission
func (r *MemorySubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions[s.ID] = copySubmission(s)
	return nil
}

// GetByID retrieves any submission by ID
func (r *MemorySubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	return copySubmission(s), nil
}

// GetPublished retrieves a submission visible to the public
func (r *MemorySubmissionRepository) GetPublished(ctx context.Context, id string) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.submissions[id]
	if !ok || s.Status == domain.StatusPending || s.Status == domain.StatusRejected {
		return nil, nil
	}
	return copySubmission(s), nil
}

// ListPublic lists published submissions for the browse feed
func (r *MemorySubmissionRepository) ListPublic(ctx context.Context, opts SubmissionListOptions) ([]*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Submission, 0)
	for _, s := range r.submissions {
		if s.Status == domain.StatusPending || s.Status == domain.StatusRejected {
			continue
		}
		if opts.Tag != "" && !contains(s.Tags, opts.Tag) {
			continue
		}
		if opts.Status != "" && opts.Status != "all" && s.Status != opts.Status {
			continue
		}
		result = append(result, copySubmission(s))
	}

	switch opts.Sort {
	case "loved":
		sort.Slice(result, func(i, j int) bool {
			if result[i].NetVotes() != result[j].NetVotes() {
				return result[i].NetVotes() > result[j].NetVotes()
			}
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case "status":
		sort.Slice(result, func(i, j int) bool {
			if result[i].Status != result[j].Status {
				return result[i].Status < result[j].Status
			}
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	default:
		sort.Slice(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	limit := opts.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListPending lists the moderation queue, oldest first
func (r *MemorySubmissionRepository) ListPending(ctx context.Context) ([]*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Submission, 0)
	for _, s := range r.submissions {
		if s.Status == domain.StatusPending {
			result = append(result, copySubmission(s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ListPublished lists every published submission, newest first
func (r *MemorySubmissionRepository) ListPublished(ctx context.Context) ([]*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Submission, 0)
	for _, s := range r.submissions {
		if s.Status != domain.StatusPending && s.Status != domain.StatusRejected {
			result = append(result, copySubmission(s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Approve transitions a pending submission to exploring
func (r *MemorySubmissionRepository) Approve(ctx context.Context, id string, tags []string, approvedAt time.Time) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.submissions[id]
	if !ok || s.Status != domain.StatusPending {
		return nil, nil
	}
	s.Status = domain.StatusExploring
	s.ApprovedAt = &approvedAt
	if tags != nil {
		s.Tags = append([]string(nil), tags...)
	}
	return copySubmission(s), nil
}

// UpdateStatus sets a post-approval status
func (r *MemorySubmissionRepository) UpdateStatus(ctx context.Context, id string, status string) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	s.Status = status
	return copySubmission(s), nil
}

// Delete removes a submission and its responses
func (r *MemorySubmissionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.submissions, id)
	delete(r.responses, id)
	return nil
}

// IncrementVote bumps the named counter
func (r *MemorySubmissionRepository) IncrementVote(ctx context.Context, id string, voteType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.submissions[id]
	if !ok {
		return nil
	}
	switch voteType {
	case domain.VoteUp:
		s.Upvotes++
	case domain.VoteDown:
		s.Downvotes++
	}
	return nil
}

// GetVoteCounts returns the current counters
func (r *MemorySubmissionRepository) GetVoteCounts(ctx context.Context, id string) (*VoteCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	return &VoteCounts{Upvotes: s.Upvotes, Downvotes: s.Downvotes}, nil
}

// AddResponse appends an admin response
func (r *MemorySubmissionRepository) AddResponse(ctx context.Context, resp *domain.AdminResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *resp
	r.responses[resp.SubmissionID] = append(r.responses[resp.SubmissionID], &c)
	return nil
}

// ListResponses lists responses for a submission ordered by creation time
func (r *MemorySubmissionRepository) ListResponses(ctx context.Context, submissionID string) ([]*domain.AdminResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.responses[submissionID]
	result := make([]*domain.AdminResponse, 0, len(list))
	for _, resp := range list {
		c := *resp
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
