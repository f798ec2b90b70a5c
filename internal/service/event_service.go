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

var ErrEventNotFound = errors.New("event not found")

// EventService defines the interface for event operations. Reads are public,
// writes are admin-only.
type EventService interface {
	// List lists events matching the filter, newest date first
	List(ctx context.Context, query *dto.ListEventsQuery) ([]*dto.EventResponse, error)
	// GetByID retrieves one event
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	// Create stores a new event
	Create(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error)
	// Update replaces an event's fields
	Update(ctx context.Context, id string, req *dto.EventRequest) (*dto.EventResponse, error)
	// Delete removes an event
	Delete(ctx context.Context, id string) error
}

// eventService implements EventService
type eventService struct {
	repo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

// List lists events matching the filter, newest date first
func (s *eventService) List(ctx context.Context, query *dto.ListEventsQuery) ([]*dto.EventResponse, error) {
	events, err := s.repo.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToEventResponse(e))
	}
	return out, nil
}

// GetByID retrieves one event
func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return dto.ToEventResponse(event), nil
}

// Create stores a new event
func (s *eventService) Create(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	event := s.fromRequest(req)
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

// Update replaces an event's fields
func (s *eventService) Update(ctx context.Context, id string, req *dto.EventRequest) (*dto.EventResponse, error) {
	event := s.fromRequest(req)
	event.ID = id

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}
	return dto.ToEventResponse(updated), nil
}

// Delete removes an event. Deleting an id that does not exist is not an
// error, matching the other hard-delete operations.
func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// fromRequest converts a validated request to a domain event. The date has
// already passed validation, so a parse failure cannot occur here.
func (s *eventService) fromRequest(req *dto.EventRequest) *domain.Event {
	date, _ := time.Parse("2006-01-02", req.Date)

	links := req.Links
	if links == nil {
		links = []domain.EventLink{}
	}
	speakers := req.Speakers
	if speakers == nil {
		speakers = []domain.EventPerson{}
	}
	sponsors := req.Sponsors
	if sponsors == nil {
		sponsors = []domain.EventPerson{}
	}

	return &domain.Event{
		Title:       validation.SanitizeText(req.Title),
		Date:        date,
		EventType:   req.EventType,
		TopicTags:   sanitizeTags(req.TopicTags),
		FoodDrinks:  sanitizeOptional(req.FoodDrinks),
		Description: sanitizeOptional(req.Description),
		Links:       links,
		Speakers:    speakers,
		Sponsors:    sponsors,
	}
}
