package repository

import (
	"context"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// EventRepository defines data access for events
type EventRepository interface {
	// Create inserts a new event
	Create(ctx context.Context, e *domain.Event) error
	// GetByID retrieves an event by ID, nil when missing
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List lists events matching the filter, newest date first
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	// Update replaces the event's fields, nil when the row is absent
	Update(ctx context.Context, e *domain.Event) (*domain.Event, error)
	// Delete removes an event; missing rows are not an error
	Delete(ctx context.Context, id string) error
}
