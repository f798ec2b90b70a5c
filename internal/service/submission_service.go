package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/dto"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/internal/validation"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidVoteType    = errors.New("invalid vote type")
	ErrEmptyResponseText  = errors.New("response text is required")
)

// SubmissionService defines the interface for submission operations, both
// the public surface and the admin moderation workflow.
type SubmissionService interface {
	// Create stores a new submission in the pending state
	Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*domain.Submission, error)
	// ListPublic lists published submissions for the browse feed
	ListPublic(ctx context.Context, query *dto.ListSubmissionsQuery) ([]*dto.SubmissionResponse, error)
	// GetPublished retrieves one published submission with its admin responses
	GetPublished(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	// Vote increments a vote counter and returns the updated counts.
	// A nil voteType changes nothing and returns the current counts.
	Vote(ctx context.Context, id string, voteType *string) (*repository.VoteCounts, error)
	// ListPending lists the moderation queue, oldest first
	ListPending(ctx context.Context) ([]*dto.AdminSubmissionResponse, error)
	// ListPublished lists every published submission for the admin
	ListPublished(ctx context.Context) ([]*dto.AdminSubmissionResponse, error)
	// Approve publishes a pending submission, optionally rewriting its tags
	Approve(ctx context.Context, id string, tags []string) (*dto.AdminSubmissionResponse, error)
	// UpdateStatus moves a published submission between workflow statuses
	UpdateStatus(ctx context.Context, id string, status string) (*dto.AdminSubmissionResponse, error)
	// AddResponse attaches an admin reply to a submission
	AddResponse(ctx context.Context, id string, responseText string) (*dto.AdminResponseResponse, error)
	// Delete removes a submission and its responses
	Delete(ctx context.Context, id string) error
}

// submissionService implements SubmissionService
type submissionService struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

// Create stores a new submission in the pending state
func (s *submissionService) Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*domain.Submission, error) {
	sub := &domain.Submission{
		ID:             uuid.New().String(),
		Type:           req.Type,
		Text:           validation.SanitizeText(req.Text),
		Tags:           sanitizeTags(req.Tags),
		RelatedEventID: emptyToNil(req.RelatedEventID),
		SubmitterName:  sanitizeOptional(req.SubmitterName),
		SubmitterEmail: req.SubmitterEmail,
		EmailOptin:     req.EmailOptin,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ListPublic lists published submissions for the browse feed
func (s *submissionService) ListPublic(ctx context.Context, query *dto.ListSubmissionsQuery) ([]*dto.SubmissionResponse, error) {
	query.SetDefaults()

	subs, err := s.repo.ListPublic(ctx, repository.SubmissionListOptions{
		Sort:   query.Sort,
		Tag:    query.Tag,
		Status: query.Status,
	})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.ToSubmissionResponse(sub))
	}
	return out, nil
}

// GetPublished retrieves one published submission with its admin responses
func (s *submissionService) GetPublished(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	sub, err := s.repo.GetPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	responses, err := s.repo.ListResponses(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToSubmissionResponse(sub)
	for _, r := range responses {
		resp.Responses = append(resp.Responses, dto.ToAdminResponseResponse(r))
	}
	return resp, nil
}

// Vote increments a vote counter and returns the updated counts
func (s *submissionService) Vote(ctx context.Context, id string, voteType *string) (*repository.VoteCounts, error) {
	if voteType != nil {
		if !validation.ValidVoteType(*voteType) {
			return nil, ErrInvalidVoteType
		}
		if err := s.repo.IncrementVote(ctx, id, *voteType); err != nil {
			return nil, err
		}
	}

	counts, err := s.repo.GetVoteCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		return nil, ErrSubmissionNotFound
	}
	return counts, nil
}

// ListPending lists the moderation queue, oldest first
func (s *submissionService) ListPending(ctx context.Context) ([]*dto.AdminSubmissionResponse, error) {
	subs, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toAdminResponses(subs), nil
}

// ListPublished lists every published submission for the admin
func (s *submissionService) ListPublished(ctx context.Context) ([]*dto.AdminSubmissionResponse, error) {
	subs, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return toAdminResponses(subs), nil
}

// Approve publishes a pending submission, optionally rewriting its tags.
// Only pending submissions can be approved; anything else is not found.
func (s *submissionService) Approve(ctx context.Context, id string, tags []string) (*dto.AdminSubmissionResponse, error) {
	if tags != nil {
		tags = sanitizeTags(tags)
	}

	sub, err := s.repo.Approve(ctx, id, tags, time.Now())
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	return dto.ToAdminSubmissionResponse(sub), nil
}

// UpdateStatus moves a published submission between workflow statuses
func (s *submissionService) UpdateStatus(ctx context.Context, id string, status string) (*dto.AdminSubmissionResponse, error) {
	if !domain.IsPublishedStatus(status) {
		return nil, ErrInvalidStatus
	}

	sub, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	return dto.ToAdminSubmissionResponse(sub), nil
}

// AddResponse attaches an admin reply to a submission
func (s *submissionService) AddResponse(ctx context.Context, id string, responseText string) (*dto.AdminResponseResponse, error) {
	if strings.TrimSpace(responseText) == "" {
		return nil, ErrEmptyResponseText
	}

	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	now := time.Now()
	resp := &domain.AdminResponse{
		ID:           uuid.New().String(),
		SubmissionID: id,
		ResponseText: validation.SanitizeText(responseText),
		AdminName:    domain.DefaultAdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.AddResponse(ctx, resp); err != nil {
		return nil, err
	}

	out := dto.ToAdminResponseResponse(resp)
	return &out, nil
}

// Delete removes a submission and its responses. Deleting an id that does
// not exist is not an error, so reject and delete are idempotent in effect.
func (s *submissionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// toAdminResponses converts domain submissions to their admin shape
func toAdminResponses(subs []*domain.Submission) []*dto.AdminSubmissionResponse {
	out := make([]*dto.AdminSubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.ToAdminSubmissionResponse(sub))
	}
	return out
}

// sanitizeTags trims and escapes each tag, dropping empties
func sanitizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if clean := validation.SanitizeText(t); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// emptyToNil maps a pointer to the empty string to nil so optional uuid
// columns receive NULL instead of an unparseable value
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// sanitizeOptional escapes an optional free-text field, nil stays nil
func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	clean := validation.SanitizeText(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
