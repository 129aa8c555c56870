// File: services/session/memory.go
package session

import (
	"context"
	"sync"

	"calendai/models"
)

// MemoryStore is a process-local Store used in tests and as a fallback when
// Redis is not configured.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.NewSession(id), nil
	}
	// Copy so callers never mutate the stored map without a Put.
	cp := models.NewSession(id)
	for k, v := range sess.Slots {
		cp.Slots[k] = v
	}
	return cp, nil
}

func (s *MemoryStore) Put(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
