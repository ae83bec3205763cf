package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestRenderPosts(t *testing.T) {
	view := postDomain.View{State: postDomain.LoadStatePopulated, Posts: []postDomain.Post{
		{Title: "First", Link: "https://a.example/1", PubDate: "Mon, 03 Mar 2025 08:00:00 GMT"},
		{Title: "Second", Link: "https://b.example/2", PubDate: "Sun, 02 Mar 2025 08:00:00 GMT"},
	}}

	out := renderPosts(view, domain.LocaleEn)
	first := strings.Index(out, "1. First")
	second := strings.Index(out, "2. Second")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, out, "https://a.example/1")
	assert.Contains(t, out, "2025-03-03")
}

func TestRenderPostsPresentations(t *testing.T) {
	tests := []struct {
		name     string
		view     postDomain.View
		locale   domain.Locale
		expected string
	}{
		{"empty", postDomain.View{State: postDomain.LoadStatePopulated}, domain.LocaleEn, "No posts yet"},
		{"loading", postDomain.View{State: postDomain.LoadStateLoading}, domain.LocaleEn, "Loading..."},
		{"failed", postDomain.View{State: postDomain.LoadStateFailed}, domain.LocaleEn, "Posts are unavailable right now"},
		{"empty zh", postDomain.View{State: postDomain.LoadStatePopulated}, domain.LocaleZh, "暂无文章"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderPosts(tt.view, tt.locale), tt.expected)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(oops.Wrap(apperrors.ErrMissingURL)))
	assert.Equal(t, 2, exitCode(apperrors.ErrMissingCredentials))
	assert.Equal(t, 3, exitCode(oops.In("auth").Wrap(apperrors.ErrInvalidCredentials)))
	assert.Equal(t, 3, exitCode(oops.In("admin").Wrap(apperrors.ErrCredentialRefused)))
	assert.Equal(t, 3, exitCode(apperrors.ErrUnauthorized))
	assert.Equal(t, 1, exitCode(apperrors.ErrTransport))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}

type fakeBackend struct {
	adminAuth atomic.Value
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case backend.PathIndex:
		io.WriteString(w, `{"data":[{"Title":"Hello","Link":"https://a.example/1","PubDate":"Mon, 03 Mar 2025 08:00:00 GMT"}]}`)
	case backend.PathLogin:
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] == "admin" && body["password"] == "admin123" {
			io.WriteString(w, `{"status":"ok","token":"abc"}`)
			return
		}
		io.WriteString(w, `{"status":"unauthorized"}`)
	case backend.PathAdmin:
		b.adminAuth.Store(r.Header.Get("Authorization"))
		io.WriteString(w, `{"status":"ok"}`)
	default:
		http.NotFound(w, r)
	}
}

func newTestApp(t *testing.T) (*fakeBackend, func(args ...string) (string, error)) {
	t.Helper()

	fb := &fakeBackend{}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	t.Setenv("BACKEND_URL", srv.URL)
	t.Setenv("STORAGE_PATH", t.TempDir())
	t.Setenv("LOCALE", "en")

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		app := App()
		app.Writer = &out
		app.ErrWriter = io.Discard
		app.ExitErrHandler = func(*cli.Context, error) {}
		err := app.Run(append([]string{"blogfeed"}, args...))
		return out.String(), err
	}
	return fb, run
}

func exitCodeOf(t *testing.T, err error) int {
	t.Helper()
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	return exitErr.ExitCode()
}

func TestPostsCommand(t *testing.T) {
	_, run := newTestApp(t)

	out, err := run("posts")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Hello")
	assert.Contains(t, out, "https://a.example/1")
}

func TestLoginAddFeedLogout(t *testing.T) {
	fb, run := newTestApp(t)

	out, err := run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in: no")

	out, err = run("login", "-u", "admin", "-p", "admin123")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in")

	out, err = run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in: yes")

	out, err = run("add-feed", "https://example.com/feed/")
	require.NoError(t, err)
	assert.Contains(t, out, "Feed added!")
	assert.Equal(t, "Basic abc", fb.adminAuth.Load())

	_, err = run("logout")
	require.NoError(t, err)

	_, err = run("add-feed", "https://example.com/feed/")
	assert.Equal(t, 3, exitCodeOf(t, err))
}

func TestLoginInvalidCredentials(t *testing.T) {
	_, run := newTestApp(t)

	_, err := run("login", "-u", "admin", "-p", "wrong")
	assert.Equal(t, 3, exitCodeOf(t, err))
	assert.Contains(t, err.Error(), "Invalid credentials")

	out, err := run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in: no")
}

func TestAddFeedWithoutURL(t *testing.T) {
	_, run := newTestApp(t)

	_, err := run("add-feed")
	assert.Equal(t, 2, exitCodeOf(t, err))
}
