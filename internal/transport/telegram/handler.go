package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	adminDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/domain"
	adminService "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/service"
	authDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	authService "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/service"
	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	postService "github.com/reshetovitsme/blog-feed-client/internal/modules/post/service"
	sessionService "github.com/reshetovitsme/blog-feed-client/internal/modules/session/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	sharedDomain "github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	"github.com/samber/lo"
)

// Telegram rejects messages longer than 4096 characters.
const maxMessageLen = 4000

// Handler handles Telegram bot interactions
type Handler struct {
	cfg     *config.Config
	index   postService.IndexFetcher
	auth    *authService.Service
	admin   *adminService.Service
	session *sessionService.Store
}

// New creates a new Telegram handler
func New(cfg *config.Config, index postService.IndexFetcher, auth *authService.Service, admin *adminService.Service, session *sessionService.Store) *Handler {
	return &Handler{
		cfg:     cfg,
		index:   index,
		auth:    auth,
		admin:   admin,
		session: session,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/posts", bot.MatchTypeExact, h.handlePosts)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypePrefix, h.handleLogin)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/addfeed", bot.MatchTypePrefix, h.handleAddFeed)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, h.handleLogout)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypeExact, h.handleStatus)
}

// HandleUpdate receives everything no command matched.
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	slog.Debug("Ignoring message", "chat_id", update.Message.Chat.ID)
}

// checkAuthorization guards the admin commands. Without an allow list
// only the public commands work.
func (h *Handler) checkAuthorization(userID int64) bool {
	return lo.Contains(h.cfg.AllowedUsers, userID)
}

func (h *Handler) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	for _, chunk := range chunkLines(text, maxMessageLen) {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   chunk,
		}); err != nil {
			slog.Error("Failed to send message", "error", err, "chat_id", update.Message.Chat.ID)
			return
		}
	}
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := `👋 Blog feed bot

Available commands:
/posts - Show the latest aggregated posts
/login <username> <password> - Sign in as administrator
/addfeed <url> - Register a new blog feed
/logout - Forget the stored sign-in
/status - Show sign-in status

Example:
/addfeed https://example.com/feed/`

	h.reply(ctx, b, update, text)
}

func (h *Handler) handlePosts(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	view := postService.NewLoader(h.index).Load(ctx)
	h.reply(ctx, b, update, formatPosts(view, h.cfg))
}

func (h *Handler) handleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	// The command carries a password; drop it from the chat history.
	if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    update.Message.Chat.ID,
		MessageID: update.Message.ID,
	}); err != nil {
		slog.Warn("Failed to delete login message", "error", err, "chat_id", update.Message.Chat.ID)
	}

	if !h.checkAuthorization(update.Message.From.ID) {
		h.reply(ctx, b, update, "❌ Unauthorized")
		return
	}

	creds, ok := parseLoginArgs(update.Message.Text)
	if !ok {
		h.reply(ctx, b, update, "Usage: /login <username> <password>")
		return
	}

	nav := authDomain.NavigatorFunc(func(ctx context.Context, _ authDomain.Destination) {
		h.reply(ctx, b, update, "✅ "+i18n.Text(i18n.KeySignedIn, h.cfg.Locale)+"\nUse /addfeed <url> to register a feed.")
	})

	if err := h.auth.Login(ctx, creds, nav); err != nil {
		h.reply(ctx, b, update, "❌ "+i18n.Message(err, h.cfg.Locale))
	}
}

func (h *Handler) handleAddFeed(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.checkAuthorization(update.Message.From.ID) {
		h.reply(ctx, b, update, "❌ Unauthorized")
		return
	}

	feedURL, ok := parseAddFeedArgs(update.Message.Text)
	if !ok {
		h.reply(ctx, b, update, "Usage: /addfeed <url>\nExample: /addfeed https://example.com/feed/")
		return
	}

	if err := h.admin.Submit(ctx, &adminDomain.Form{URL: feedURL}); err != nil {
		h.reply(ctx, b, update, "❌ "+i18n.Message(err, h.cfg.Locale))
		return
	}
	h.reply(ctx, b, update, "✅ "+i18n.Text(i18n.KeyFeedAdded, h.cfg.Locale))
}

func (h *Handler) handleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.checkAuthorization(update.Message.From.ID) {
		h.reply(ctx, b, update, "❌ Unauthorized")
		return
	}

	if err := h.session.Clear(); err != nil {
		h.reply(ctx, b, update, "❌ "+i18n.Message(err, h.cfg.Locale))
		return
	}
	h.reply(ctx, b, update, "✅ "+i18n.Text(i18n.KeySignedOut, h.cfg.Locale))
}

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Status\n\n")
	sb.WriteString(fmt.Sprintf("Backend: %s\n", h.cfg.BackendURL))
	if session, ok := h.session.Current(); ok {
		sb.WriteString(fmt.Sprintf("Signed in since: %s\n", session.SavedAt.Format("2006-01-02 15:04")))
	} else {
		sb.WriteString("Signed in: no\n")
	}
	authState, authErr := h.auth.State()
	sb.WriteString(formatFlowState("Last sign-in", authState, authErr, h.cfg))
	adminState, adminErr := h.admin.State()
	sb.WriteString(formatFlowState("Last submission", adminState, adminErr, h.cfg))

	h.reply(ctx, b, update, sb.String())
}

func formatPosts(view postDomain.View, cfg *config.Config) string {
	switch view.Presentation() {
	case postDomain.PresentationEmpty:
		return i18n.Text(i18n.KeyNoPosts, cfg.Locale)
	case postDomain.PresentationUnavailable:
		return i18n.Text(i18n.KeyUnavailable, cfg.Locale)
	case postDomain.PresentationLoading:
		return i18n.Text(i18n.KeyLoading, cfg.Locale)
	}

	lines := lo.Map(view.Posts, func(post postDomain.Post, i int) string {
		return fmt.Sprintf("%d. %s (%s)\n%s", i+1, post.Title, post.DisplayDate(), post.Link)
	})
	return strings.Join(lines, "\n\n")
}

// formatFlowState renders one status line. Idle flows have nothing to report.
func formatFlowState(label string, state sharedDomain.FlowState, err error, cfg *config.Config) string {
	switch state {
	case sharedDomain.FlowStateIdle, "":
		return ""
	case sharedDomain.FlowStateFailed:
		return fmt.Sprintf("%s: %s (%s)\n", label, state, i18n.Message(err, cfg.Locale))
	default:
		return fmt.Sprintf("%s: %s\n", label, state)
	}
}

func parseLoginArgs(text string) (authDomain.Credentials, bool) {
	parts := strings.Fields(text)
	if len(parts) != 3 {
		return authDomain.Credentials{}, false
	}
	creds := authDomain.Credentials{Username: parts[1], Password: parts[2]}
	return creds, creds.Validate() == nil
}

func parseAddFeedArgs(text string) (string, bool) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return "", false
	}
	return parts[1], true
}

// chunkLines splits text on line boundaries into pieces of at most limit
// bytes. A single longer line is cut on a rune boundary.
func chunkLines(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
