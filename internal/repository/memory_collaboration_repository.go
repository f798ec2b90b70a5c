package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// MemoryCollaborationRepository is an in-memory CollaborationRepository for tests
type MemoryCollaborationRepository struct {
	mu     sync.RWMutex
	offers map[string]*domain.CollaborationOffer
}

// NewMemoryCollaborationRepository creates a new in-memory collaboration repository
func NewMemoryCollaborationRepository() *MemoryCollaborationRepository {
	return &MemoryCollaborationRepository{
		offers: make(map[string]*domain.CollaborationOffer),
	}
}

func copyOffer(c *domain.CollaborationOffer) *domain.CollaborationOffer {
	o := *c
	o.Offerings = append([]string(nil), c.Offerings...)
	o.PreferredEventTypes = append([]string(nil), c.PreferredEventTypes...)
	return &o
}

// Create inserts a new collaboration offer
func (r *MemoryCollaborationRepository) Create(ctx context.Context, c *domain.CollaborationOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers[c.ID] = copyOffer(c)
	return nil
}

// List lists every offer, newest first
func (r *MemoryCollaborationRepository) List(ctx context.Context) ([]*domain.CollaborationOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.CollaborationOffer, 0, len(r.offers))
	for _, c := range r.offers {
		result = append(result, copyOffer(c))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update sets status and admin notes
func (r *MemoryCollaborationRepository) Update(ctx context.Context, id string, status string, notes *string) (*domain.CollaborationOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.offers[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	c.AdminNotes = notes
	return copyOffer(c), nil
}
