package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/admin/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	sharedDomain "github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/metrics"
	"github.com/samber/oops"
)

// Registrar submits feed registrations with a credential.
type Registrar interface {
	RegisterFeed(ctx context.Context, token string, reg domain.FeedRegistration) (backend.StatusResponse, error)
}

// SessionReader reads the stored credential.
type SessionReader interface {
	Get() (string, bool)
}

// Service handles feed registration from the dashboard
type Service struct {
	registrar Registrar
	session   SessionReader
	logger    *slog.Logger

	busy atomic.Bool

	mu      sync.RWMutex
	state   sharedDomain.FlowState
	lastErr error
}

// New creates a new admin service
func New(registrar Registrar, session SessionReader) *Service {
	return &Service{
		registrar: registrar,
		session:   session,
		logger:    slog.Default(),
		state:     sharedDomain.FlowStateIdle,
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Busy reports whether a submission is in flight. Submit controls should
// be disabled while it is true.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Submit registers form.URL using the stored credential. The form is
// cleared on success only. Without a credential no request is made.
func (s *Service) Submit(ctx context.Context, form *domain.Form) error {
	if err := form.Validate(); err != nil {
		metrics.FeedSubmissions.WithLabelValues(metrics.Outcome(err)).Inc()
		return err
	}

	if !s.busy.CompareAndSwap(false, true) {
		err := oops.In("admin").With("url", form.URL).Wrap(apperrors.ErrBusy)
		metrics.FeedSubmissions.WithLabelValues(metrics.Outcome(err)).Inc()
		return err
	}
	defer s.busy.Store(false)

	s.setState(sharedDomain.FlowStatePending)

	err := s.submit(ctx, form)
	s.finish(err)
	if err != nil {
		s.logger.Warn("Feed registration failed", "url", form.URL, "error", err)
		return err
	}

	s.logger.Info("Feed registered", "url", form.URL)
	form.Reset()
	return nil
}

func (s *Service) submit(ctx context.Context, form *domain.Form) error {
	token, ok := s.session.Get()
	if !ok {
		return oops.In("admin").Wrap(apperrors.ErrUnauthorized)
	}

	reg := form.Registration()
	resp, err := s.registrar.RegisterFeed(ctx, token, reg)
	switch {
	case errors.Is(err, apperrors.ErrTransport):
		return err
	case err != nil:
		return oops.In("admin").With("url", reg.URL).Wrapf(apperrors.ErrRejected, "%v", err)
	case resp.OK():
		return nil
	case resp.Status == backend.StatusUnauthorized:
		return oops.In("admin").With("url", reg.URL, "message", resp.Message).Wrap(apperrors.ErrCredentialRefused)
	default:
		return oops.In("admin").With("url", reg.URL, "status", resp.Status, "error", resp.Error).Wrapf(apperrors.ErrRejected, "status %q", resp.Status)
	}
}

// State reports the outcome of the latest submission.
func (s *Service) State() (sharedDomain.FlowState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.lastErr
}

func (s *Service) setState(state sharedDomain.FlowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.lastErr = nil
}

func (s *Service) finish(err error) {
	metrics.FeedSubmissions.WithLabelValues(metrics.Outcome(err)).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil {
		s.state = sharedDomain.FlowStateFailed
		return
	}
	s.state = sharedDomain.FlowStateSucceeded
}
