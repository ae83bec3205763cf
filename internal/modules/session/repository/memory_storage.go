package repository

import (
	"sync"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
)

// MemoryStorage keeps the session for the lifetime of the process only.
type MemoryStorage struct {
	mu      sync.RWMutex
	session *domain.Session
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.Present() {
		return nil, errors.ErrNoSession
	}
	session := *s.session
	return &session, nil
}

func (s *MemoryStorage) Save(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *session
	s.session = &saved
	return nil
}

func (s *MemoryStorage) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}
