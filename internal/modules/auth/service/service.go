package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	sharedDomain "github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/metrics"
	"github.com/samber/oops"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (backend.LoginResponse, error)
}

// SessionWriter persists the credential issued at sign-in.
type SessionWriter interface {
	Set(token string) error
}

// Service handles the sign-in flow
type Service struct {
	auth    Authenticator
	session SessionWriter
	logger  *slog.Logger

	mu      sync.RWMutex
	state   sharedDomain.FlowState
	lastErr error
}

// New creates a new auth service
func New(auth Authenticator, session SessionWriter) *Service {
	return &Service{
		auth:    auth,
		session: session,
		logger:  slog.Default(),
		state:   sharedDomain.FlowStateIdle,
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Login makes one sign-in attempt. On success the token is stored and nav
// is sent to the dashboard; on failure the stored session is untouched.
func (s *Service) Login(ctx context.Context, creds domain.Credentials, nav domain.Navigator) error {
	if err := creds.Validate(); err != nil {
		s.finish(err)
		return err
	}

	s.setState(sharedDomain.FlowStatePending)

	token, err := s.authenticate(ctx, creds)
	if err == nil {
		err = s.session.Set(token)
	}
	s.finish(err)
	if err != nil {
		s.logger.Warn("Sign-in failed", "username", creds.Username, "error", err)
		return err
	}

	s.logger.Info("Signed in", "username", creds.Username)
	nav.Navigate(ctx, domain.DestinationDashboard)
	return nil
}

func (s *Service) authenticate(ctx context.Context, creds domain.Credentials) (string, error) {
	resp, err := s.auth.Login(ctx, creds)
	switch {
	case errors.Is(err, apperrors.ErrTransport):
		return "", err
	case err != nil:
		return "", oops.In("auth").Wrapf(apperrors.ErrInvalidCredentials, "%v", err)
	case !resp.OK():
		return "", oops.In("auth").With("status", resp.Status).Wrapf(apperrors.ErrInvalidCredentials, "login status %q", resp.Status)
	case resp.Token == "":
		return "", oops.In("auth").Wrapf(apperrors.ErrInvalidCredentials, "login succeeded without a token")
	}
	return resp.Token, nil
}

// State reports the outcome of the latest attempt.
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
	metrics.LoginAttempts.WithLabelValues(metrics.Outcome(err)).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil {
		s.state = sharedDomain.FlowStateFailed
		return
	}
	s.state = sharedDomain.FlowStateSucceeded
}
