package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/metrics"
)

// IndexFetcher reads the public post index.
type IndexFetcher interface {
	FetchIndex(ctx context.Context) ([]domain.Post, error)
}

// Loader backs one displayed post list. It fetches the index at most once
// in its lifetime; build a new Loader for every new display.
type Loader struct {
	fetcher IndexFetcher
	logger  *slog.Logger

	mu    sync.Mutex
	state domain.LoadState
	posts []domain.Post
}

// NewLoader creates an idle loader
func NewLoader(fetcher IndexFetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  slog.Default(),
		state:   domain.LoadStateIdle,
	}
}

// SetLogger sets the logger
func (l *Loader) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// Load performs the single index fetch on first call and returns the
// resulting view. Later calls return the current view without a request.
func (l *Loader) Load(ctx context.Context) domain.View {
	l.mu.Lock()
	if l.state != domain.LoadStateIdle {
		view := l.viewLocked()
		l.mu.Unlock()
		return view
	}
	l.state = domain.LoadStateLoading
	l.mu.Unlock()

	posts, err := l.fetcher.FetchIndex(ctx)
	metrics.IndexFetches.WithLabelValues(metrics.Outcome(err)).Inc()

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.logger.Error("Error fetching post index", "error", err)
		l.state = domain.LoadStateFailed
		return l.viewLocked()
	}

	l.posts = posts
	l.state = domain.LoadStatePopulated
	return l.viewLocked()
}

// View returns the current view.
func (l *Loader) View() domain.View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewLocked()
}

func (l *Loader) viewLocked() domain.View {
	view := domain.View{State: l.state}
	if l.posts != nil {
		view.Posts = make([]domain.Post, len(l.posts))
		copy(view.Posts, l.posts)
	}
	return view
}
