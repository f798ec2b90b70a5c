package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

// MemoryEventRepository is an in-memory EventRepository for tests
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
}

// NewMemoryEventRepository creates a new in-memory event repository
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		events: make(map[string]*domain.Event),
	}
}

func copyEvent(e *domain.Event) *domain.Event {
	c := *e
	c.TopicTags = append([]string(nil), e.TopicTags...)
	c.Links = append([]domain.EventLink(nil), e.Links...)
	c.Speakers = append([]domain.EventPerson(nil), e.Speakers...)
	c.Sponsors = append([]domain.EventPerson(nil), e.Sponsors...)
	return &c
}

// Create inserts a new event
func (r *MemoryEventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[e.ID] = copyEvent(e)
	return nil
}

// GetByID retrieves an event by ID
func (r *MemoryEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return copyEvent(e), nil
}

// List lists events matching the filter, newest date first
func (r *MemoryEventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Event, 0)
	for _, e := range r.events {
		if filter.Topic != "" && !contains(e.TopicTags, filter.Topic) {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.Year != 0 && e.Date.Year() != filter.Year {
			continue
		}
		if filter.Speaker != "" && !hasPerson(e.Speakers, filter.Speaker) {
			continue
		}
		if filter.Sponsor != "" && !hasPerson(e.Sponsors, filter.Sponsor) {
			continue
		}
		result = append(result, copyEvent(e))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// Update replaces the event's fields
func (r *MemoryEventRepository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.events[e.ID]
	if !ok {
		return nil, nil
	}
	updated := copyEvent(e)
	updated.CreatedAt = existing.CreatedAt
	r.events[e.ID] = updated
	return copyEvent(updated), nil
}

// Delete removes an event
func (r *MemoryEventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

func hasPerson(people []domain.EventPerson, name string) bool {
	for _, p := range people {
		if p.Name == name {
			return true
		}
	}
	return false
}
