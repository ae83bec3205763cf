package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/modules/auth/service"
	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/repository"
	sessionService "github.com/reshetovitsme/blog-feed-client/internal/modules/session/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	sharedDomain "github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	resp  backend.LoginResponse
	err   error
	calls []domain.Credentials
}

func (f *fakeAuthenticator) Login(ctx context.Context, creds domain.Credentials) (backend.LoginResponse, error) {
	f.calls = append(f.calls, creds)
	return f.resp, f.err
}

type recordingNavigator struct {
	destinations []domain.Destination
}

func (n *recordingNavigator) Navigate(ctx context.Context, to domain.Destination) {
	n.destinations = append(n.destinations, to)
}

type failingSession struct{}

func (failingSession) Set(string) error {
	return oops.Wrapf(apperrors.ErrSessionStorage, "disk full")
}

func okResponse(token string) backend.LoginResponse {
	return backend.LoginResponse{StatusResponse: backend.StatusResponse{Status: "ok"}, Token: token}
}

func TestLoginSuccessStoresTokenAndNavigates(t *testing.T) {
	auth := &fakeAuthenticator{resp: okResponse("abc")}
	store := sessionService.New(repository.NewMemoryStorage())
	nav := &recordingNavigator{}
	svc := service.New(auth, store)

	err := svc.Login(context.Background(), domain.Credentials{Username: "admin", Password: "admin123"}, nav)
	require.NoError(t, err)

	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
	assert.Equal(t, []domain.Destination{domain.DestinationDashboard}, nav.destinations)
	assert.Equal(t, []domain.Credentials{{Username: "admin", Password: "admin123"}}, auth.calls)

	state, lastErr := svc.State()
	assert.Equal(t, sharedDomain.FlowStateSucceeded, state)
	assert.NoError(t, lastErr)
}

func TestLoginFailuresLeaveSessionUntouched(t *testing.T) {
	tests := []struct {
		name     string
		resp     backend.LoginResponse
		err      error
		expected error
	}{
		{
			name:     "status error",
			resp:     backend.LoginResponse{StatusResponse: backend.StatusResponse{Status: "error"}},
			expected: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "status unauthorized",
			resp:     backend.LoginResponse{StatusResponse: backend.StatusResponse{Status: "unauthorized"}},
			expected: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "ok without token",
			resp:     okResponse(""),
			expected: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "malformed body",
			err:      oops.Wrapf(apperrors.ErrMalformedResponse, "unexpected end of JSON input"),
			expected: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "no response",
			err:      oops.Wrapf(apperrors.ErrTransport, "connection refused"),
			expected: apperrors.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := sessionService.New(repository.NewMemoryStorage())
			require.NoError(t, store.Set("previous"))
			nav := &recordingNavigator{}
			svc := service.New(&fakeAuthenticator{resp: tt.resp, err: tt.err}, store)

			err := svc.Login(context.Background(), domain.Credentials{Username: "admin", Password: "admin123"}, nav)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			if tt.expected == apperrors.ErrTransport {
				assert.False(t, errors.Is(err, apperrors.ErrInvalidCredentials))
			}

			token, _ := store.Get()
			assert.Equal(t, "previous", token)
			assert.Empty(t, nav.destinations)

			state, lastErr := svc.State()
			assert.Equal(t, sharedDomain.FlowStateFailed, state)
			assert.Equal(t, err, lastErr)
		})
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	for _, creds := range []domain.Credentials{
		{Username: "", Password: "secret"},
		{Username: "   ", Password: "secret"},
		{Username: "admin", Password: ""},
	} {
		auth := &fakeAuthenticator{resp: okResponse("abc")}
		svc := service.New(auth, sessionService.New(repository.NewMemoryStorage()))

		err := svc.Login(context.Background(), creds, &recordingNavigator{})
		assert.True(t, errors.Is(err, apperrors.ErrMissingCredentials))
		assert.Empty(t, auth.calls, "no request without both fields")
	}
}

func TestLoginStorageFailureDoesNotNavigate(t *testing.T) {
	nav := &recordingNavigator{}
	svc := service.New(&fakeAuthenticator{resp: okResponse("abc")}, failingSession{})

	err := svc.Login(context.Background(), domain.Credentials{Username: "admin", Password: "admin123"}, nav)
	assert.True(t, errors.Is(err, apperrors.ErrSessionStorage))
	assert.Empty(t, nav.destinations)
}

func TestNavigatorFunc(t *testing.T) {
	var got domain.Destination
	nav := domain.NavigatorFunc(func(ctx context.Context, to domain.Destination) { got = to })

	svc := service.New(&fakeAuthenticator{resp: okResponse("abc")}, sessionService.New(repository.NewMemoryStorage()))
	require.NoError(t, svc.Login(context.Background(), domain.Credentials{Username: "admin", Password: "x"}, nav))
	assert.Equal(t, domain.DestinationDashboard, got)
}
