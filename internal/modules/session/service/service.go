package service

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/repository"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/oops"
)

// Store is the session store handed to the flows. Reads never fail: an
// unavailable medium reads as no credential.
type Store struct {
	repo   repository.Repository
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new session store
func New(repo repository.Repository) *Store {
	return &Store{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
}

// SetLogger sets the logger
func (s *Store) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Get returns the stored credential.
func (s *Store) Get() (string, bool) {
	session, ok := s.Current()
	if !ok {
		return "", false
	}
	return session.Token, true
}

// Current returns the whole stored session record.
func (s *Store) Current() (domain.Session, bool) {
	session, err := s.repo.Load()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoSession) {
			s.logger.Warn("Session unreadable, treating as signed out", "error", err)
		}
		return domain.Session{}, false
	}
	return *session, true
}

// Set stores token, replacing any previous credential.
func (s *Store) Set(token string) error {
	if strings.TrimSpace(token) == "" {
		return oops.In("session").Wrapf(apperrors.ErrSessionStorage, "refusing to store an empty credential")
	}

	if err := s.repo.Save(&domain.Session{Token: token, SavedAt: s.now().UTC()}); err != nil {
		s.logger.Error("Failed to store session", "error", err)
		return oops.In("session").Wrapf(apperrors.ErrSessionStorage, "%v", err)
	}
	return nil
}

// Clear forgets the stored credential.
func (s *Store) Clear() error {
	if err := s.repo.Delete(); err != nil {
		s.logger.Error("Failed to clear session", "error", err)
		return oops.In("session").Wrapf(apperrors.ErrSessionStorage, "%v", err)
	}
	return nil
}
