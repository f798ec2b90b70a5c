package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process session store with a sliding expiry.
// Sessions are lost on restart, which matches the ephemeral contract.
type MemoryStore struct {
	ttl       time.Duration
	mu        sync.Mutex
	deadlines map[string]time.Time
	stop      chan struct{}
	stopOnce  sync.Once

	now func() time.Time
}

// NewMemoryStore creates a memory store and starts its cleanup goroutine
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:       ttl,
		deadlines: make(map[string]time.Time),
		stop:      make(chan struct{}),
		now:       time.Now,
	}
	go s.cleanup()
	return s
}

// Create registers a new session and returns its ID
func (s *MemoryStore) Create(ctx context.Context) (string, error) {
	id := uuid.New().String()
	s.mu.Lock()
	s.deadlines[id] = s.now().Add(s.ttl)
	s.mu.Unlock()
	return id, nil
}

// Touch reports whether the session is live and slides its expiry
func (s *MemoryStore) Touch(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.deadlines[id]
	if !ok {
		return false, nil
	}
	if s.now().After(deadline) {
		delete(s.deadlines, id)
		return false, nil
	}
	s.deadlines[id] = s.now().Add(s.ttl)
	return true, nil
}

// Delete removes a session
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.deadlines, id)
	s.mu.Unlock()
	return nil
}

// cleanup periodically drops expired sessions
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for id, deadline := range s.deadlines {
				if now.After(deadline) {
					delete(s.deadlines, id)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
