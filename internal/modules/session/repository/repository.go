package repository

import (
	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/domain"
)

// Repository defines the interface for session persistence. Load returns
// an error wrapping errors.ErrNoSession when nothing is stored.
type Repository interface {
	Load() (*domain.Session, error)
	Save(session *domain.Session) error
	Delete() error
}
