package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/admin/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/modules/admin/service"
	"github.com/reshetovitsme/blog-feed-client/internal/modules/session/repository"
	sessionService "github.com/reshetovitsme/blog-feed-client/internal/modules/session/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	sharedDomain "github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	token string
	reg   domain.FeedRegistration
}

type fakeRegistrar struct {
	mu      sync.Mutex
	calls   []call
	resp    backend.StatusResponse
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeRegistrar) RegisterFeed(ctx context.Context, token string, reg domain.FeedRegistration) (backend.StatusResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{token: token, reg: reg})
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.resp, f.err
}

func (f *fakeRegistrar) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func signedIn(t *testing.T, token string) *sessionService.Store {
	t.Helper()
	store := sessionService.New(repository.NewMemoryStorage())
	require.NoError(t, store.Set(token))
	return store
}

func TestSubmitWithoutCredentialMakesNoRequest(t *testing.T) {
	registrar := &fakeRegistrar{resp: backend.StatusResponse{Status: "ok"}}
	svc := service.New(registrar, sessionService.New(repository.NewMemoryStorage()))
	form := &domain.Form{URL: "https://example.com/feed/"}

	err := svc.Submit(context.Background(), form)

	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	assert.Equal(t, 0, registrar.callCount())
	assert.Equal(t, "https://example.com/feed/", form.URL)
	assert.False(t, svc.Busy())
}

func TestSubmitSuccessClearsForm(t *testing.T) {
	registrar := &fakeRegistrar{resp: backend.StatusResponse{Status: "ok"}}
	svc := service.New(registrar, signedIn(t, "abc"))
	form := &domain.Form{URL: "https://example.com/feed/"}

	require.NoError(t, svc.Submit(context.Background(), form))

	assert.Empty(t, form.URL)
	require.Equal(t, 1, registrar.callCount())
	assert.Equal(t, call{token: "abc", reg: domain.FeedRegistration{URL: "https://example.com/feed/"}}, registrar.calls[0])

	state, lastErr := svc.State()
	assert.Equal(t, sharedDomain.FlowStateSucceeded, state)
	assert.NoError(t, lastErr)
}

func TestSubmitFailuresKeepForm(t *testing.T) {
	tests := []struct {
		name     string
		resp     backend.StatusResponse
		err      error
		expected error
	}{
		{
			name:     "status error",
			resp:     backend.StatusResponse{Status: "error", Error: "duplicate key"},
			expected: apperrors.ErrRejected,
		},
		{
			name:     "credential refused",
			resp:     backend.StatusResponse{Status: "unauthorized", Message: "认证失败"},
			expected: apperrors.ErrCredentialRefused,
		},
		{
			name:     "malformed body",
			err:      oops.Wrapf(apperrors.ErrMalformedResponse, "invalid character"),
			expected: apperrors.ErrRejected,
		},
		{
			name:     "transport",
			err:      oops.Wrapf(apperrors.ErrTransport, "connection reset"),
			expected: apperrors.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(&fakeRegistrar{resp: tt.resp, err: tt.err}, signedIn(t, "abc"))
			form := &domain.Form{URL: "https://example.com/feed/"}

			err := svc.Submit(context.Background(), form)

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			assert.Equal(t, "https://example.com/feed/", form.URL)
			assert.False(t, svc.Busy())

			state, _ := svc.State()
			assert.Equal(t, sharedDomain.FlowStateFailed, state)
		})
	}
}

func TestCredentialRefusedIsARejection(t *testing.T) {
	svc := service.New(&fakeRegistrar{resp: backend.StatusResponse{Status: "unauthorized"}}, signedIn(t, "abc"))

	err := svc.Submit(context.Background(), &domain.Form{URL: "https://example.com/feed/"})
	assert.True(t, errors.Is(err, apperrors.ErrRejected))
}

func TestSubmitRequiresURL(t *testing.T) {
	registrar := &fakeRegistrar{resp: backend.StatusResponse{Status: "ok"}}
	svc := service.New(registrar, signedIn(t, "abc"))

	err := svc.Submit(context.Background(), &domain.Form{URL: "   "})
	assert.True(t, errors.Is(err, apperrors.ErrMissingURL))
	assert.Equal(t, 0, registrar.callCount())
}

func TestSubmitWhileBusyMakesOneRequest(t *testing.T) {
	registrar := &fakeRegistrar{
		resp:    backend.StatusResponse{Status: "ok"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := service.New(registrar, signedIn(t, "abc"))

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = svc.Submit(context.Background(), &domain.Form{URL: "https://example.com/feed/"})
	}()

	select {
	case <-registrar.started:
	case <-time.After(time.Second):
		t.Fatal("first submission never reached the backend")
	}
	assert.True(t, svc.Busy())

	var rejected atomic.Int32
	var rapid sync.WaitGroup
	for i := 0; i < 2; i++ {
		rapid.Add(1)
		go func() {
			defer rapid.Done()
			err := svc.Submit(context.Background(), &domain.Form{URL: "https://example.com/feed/"})
			if errors.Is(err, apperrors.ErrBusy) {
				rejected.Add(1)
			}
		}()
	}
	rapid.Wait()

	assert.True(t, svc.Busy(), "still busy until the first response arrives")
	assert.Equal(t, int32(2), rejected.Load())
	assert.Equal(t, 1, registrar.callCount())

	close(registrar.release)
	wg.Wait()

	assert.NoError(t, firstErr)
	assert.False(t, svc.Busy())
	assert.Equal(t, 1, registrar.callCount())
}
