package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	authDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
)

func TestParseLoginArgs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected authDomain.Credentials
		ok       bool
	}{
		{"valid", "/login admin admin123", authDomain.Credentials{Username: "admin", Password: "admin123"}, true},
		{"extra spaces", "/login   admin   admin123 ", authDomain.Credentials{Username: "admin", Password: "admin123"}, true},
		{"missing password", "/login admin", authDomain.Credentials{}, false},
		{"too many args", "/login admin pass word", authDomain.Credentials{}, false},
		{"no args", "/login", authDomain.Credentials{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, ok := parseLoginArgs(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, creds)
			}
		})
	}
}

func TestParseAddFeedArgs(t *testing.T) {
	url, ok := parseAddFeedArgs("/addfeed https://example.com/feed/")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/feed/", url)

	_, ok = parseAddFeedArgs("/addfeed")
	assert.False(t, ok)
}

func TestFormatPosts(t *testing.T) {
	cfg := &config.Config{Locale: domain.LocaleEn}

	view := postDomain.View{State: postDomain.LoadStatePopulated, Posts: []postDomain.Post{
		{Title: "First", Link: "https://a.example/1", PubDate: "Mon, 03 Mar 2025 08:00:00 GMT"},
		{Title: "Second", Link: "https://b.example/2", PubDate: "soon"},
	}}
	assert.Equal(t, "1. First (2025-03-03)\nhttps://a.example/1\n\n2. Second (soon)\nhttps://b.example/2", formatPosts(view, cfg))

	assert.Equal(t, "No posts yet", formatPosts(postDomain.View{State: postDomain.LoadStatePopulated}, cfg))
	assert.Equal(t, "Posts are unavailable right now", formatPosts(postDomain.View{State: postDomain.LoadStateFailed}, cfg))
}

func TestChunkLines(t *testing.T) {
	assert.Equal(t, []string{"short"}, chunkLines("short", 10))

	chunks := chunkLines("aaaa\nbbbb\ncccc\n", 10)
	assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc\n"}, chunks)

	long := strings.Repeat("x", 25)
	assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, chunkLines(long, 10))

	for _, chunk := range chunkLines(strings.Repeat("添加成功", 10), 10) {
		assert.True(t, utf8.ValidString(chunk))
		assert.LessOrEqual(t, len(chunk), 10)
	}
}

func TestFormatFlowState(t *testing.T) {
	cfg := &config.Config{Locale: domain.LocaleEn}

	assert.Empty(t, formatFlowState("Last sign-in", domain.FlowStateIdle, nil, cfg))
	assert.Equal(t, "Last sign-in: succeeded\n", formatFlowState("Last sign-in", domain.FlowStateSucceeded, nil, cfg))
	assert.Equal(t, "Last submission: pending\n", formatFlowState("Last submission", domain.FlowStatePending, nil, cfg))

	err := oops.In("admin").Wrap(apperrors.ErrUnauthorized)
	assert.Equal(t, "Last submission: failed (Unauthorized, please sign in first)\n",
		formatFlowState("Last submission", domain.FlowStateFailed, err, cfg))
}
