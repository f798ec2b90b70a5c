package repository

import (
	"context"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// CollaborationRepository defines data access for collaboration offers
type CollaborationRepository interface {
	// Create inserts a new collaboration offer
	Create(ctx context.Context, c *domain.CollaborationOffer) error
	// List lists every offer, newest first
	List(ctx context.Context) ([]*domain.CollaborationOffer, error)
	// Update sets status and admin notes, nil when the row is absent
	Update(ctx context.Context, id string, status string, notes *string) (*domain.CollaborationOffer, error)
}
