package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/dto"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/internal/validation"
)

var (
	ErrCollaborationNotFound = errors.New("collaboration offer not found")
	ErrInvalidCollabStatus   = errors.New("invalid collaboration status")
)

// CollaborationService defines the interface for collaboration offer operations
type CollaborationService interface {
	// Create stores a new offer in the new state
	Create(ctx context.Context, req *dto.CreateCollaborationRequest) (*domain.CollaborationOffer, error)
	// List lists every offer for the admin, newest first
	List(ctx context.Context) ([]*dto.CollaborationResponse, error)
	// Update sets an offer's pipeline status and admin notes
	Update(ctx context.Context, id string, req *dto.UpdateCollaborationRequest) (*dto.CollaborationResponse, error)
}

// collaborationService implements CollaborationService
type collaborationService struct {
	repo repository.CollaborationRepository
}

// NewCollaborationService creates a new CollaborationService
func NewCollaborationService(repo repository.CollaborationRepository) CollaborationService {
	return &collaborationService{repo: repo}
}

// Create stores a new offer in the new state
func (s *collaborationService) Create(ctx context.Context, req *dto.CreateCollaborationRequest) (*domain.CollaborationOffer, error) {
	collabType := req.CollaborationType
	if collabType == "" {
		collabType = domain.CollaborationOneTime
	}
	// Opt-in defaults to true here: collaboration contacts expect a reply
	optin := true
	if req.EmailOptin != nil {
		optin = *req.EmailOptin
	}

	offer := &domain.CollaborationOffer{
		ID:                  uuid.New().String(),
		ContactName:         validation.SanitizeText(req.ContactName),
		Email:               req.Email,
		Organization:        sanitizeOptional(req.Organization),
		Offerings:           req.Offerings,
		OtherOffering:       sanitizeOptional(req.OtherOffering),
		BudgetRange:         req.BudgetRange,
		VenueCapacity:       req.VenueCapacity,
		Location:            sanitizeOptional(req.Location),
		PreferredEventTypes: req.PreferredEventTypes,
		Availability:        sanitizeOptional(req.Availability),
		CollaborationType:   collabType,
		AdditionalDetails:   sanitizeOptional(req.AdditionalDetails),
		EmailOptin:          optin,
		Status:              domain.CollabStatusNew,
		CreatedAt:           time.Now(),
	}

	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// List lists every offer for the admin, newest first
func (s *collaborationService) List(ctx context.Context) ([]*dto.CollaborationResponse, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CollaborationResponse, 0, len(offers))
	for _, offer := range offers {
		out = append(out, dto.ToCollaborationResponse(offer))
	}
	return out, nil
}

// Update sets an offer's pipeline status and admin notes
func (s *collaborationService) Update(ctx context.Context, id string, req *dto.UpdateCollaborationRequest) (*dto.CollaborationResponse, error) {
	if !domain.IsCollabStatus(req.Status) {
		return nil, ErrInvalidCollabStatus
	}

	offer, err := s.repo.Update(ctx, id, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrCollaborationNotFound
	}
	return dto.ToCollaborationResponse(offer), nil
}
