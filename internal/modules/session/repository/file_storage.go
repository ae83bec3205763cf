package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/oops"
)

const sessionFile = "session.json"

// FileStorage implements Repository with a single JSON file, so the
// credential survives restarts.
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates a new file-based session repository
func NewFileStorage(basePath string) (Repository, error) {
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	return &FileStorage{path: filepath.Join(basePath, sessionFile)}, nil
}

func (s *FileStorage) Load() (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("path", s.path).Wrap(errors.ErrNoSession)
		}
		return nil, oops.With("path", s.path, "context", "failed to read session").Wrap(err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, oops.With("path", s.path, "context", "failed to unmarshal session").Wrap(err)
	}
	if !session.Present() {
		return nil, oops.With("path", s.path).Wrap(errors.ErrNoSession)
	}

	return &session, nil
}

func (s *FileStorage) Save(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return oops.With("context", "failed to marshal session").Wrap(err)
	}

	// Write-then-rename so a crash never leaves a truncated credential.
	// The temp name is unique because other processes may share the
	// directory. CreateTemp opens it with mode 0600.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "session-*.tmp")
	if err != nil {
		return oops.With("path", s.path, "context", "failed to create temp session").Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return oops.With("path", tmp.Name(), "context", "failed to write session").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return oops.With("path", tmp.Name(), "context", "failed to write session").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return oops.With("path", s.path, "context", "failed to replace session").Wrap(err)
	}
	return nil
}

func (s *FileStorage) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return oops.With("path", s.path, "context", "failed to delete session").Wrap(err)
	}
	return nil
}
