package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	adminDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/domain"
	adminService "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/service"
	authDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	authService "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/service"
	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	postService "github.com/reshetovitsme/blog-feed-client/internal/modules/post/service"
	sessionService "github.com/reshetovitsme/blog-feed-client/internal/modules/session/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	sloghttp "github.com/samber/slog-http"
)

// Server is the local web front end: post list, sign-in and dashboard.
type Server struct {
	cfg     *config.Config
	index   postService.IndexFetcher
	auth    *authService.Service
	admin   *adminService.Service
	session *sessionService.Store
	views   *views
	logger  *slog.Logger
	server  *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, index postService.IndexFetcher, auth *authService.Service, admin *adminService.Service, session *sessionService.Store) *Server {
	return &Server{
		cfg:     cfg,
		index:   index,
		auth:    auth,
		admin:   admin,
		session: session,
		views:   mustParseViews(),
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler with logging and recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handlePosts)
	mux.HandleFunc("GET /signin", s.handleSignInForm)
	mux.HandleFunc("POST /signin", s.handleSignIn)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("POST /dashboard", s.handleSubmitFeed)
	mux.HandleFunc("POST /signout", s.handleSignOut)

	mux.HandleFunc("GET /feed.atom", s.handleSyndication(formatAtom))
	mux.HandleFunc("GET /feed.rss", s.handleSyndication(formatRSS))

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := sameOrigin(mux)
	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Web server starting", "addr", addr, "backend", s.cfg.BackendURL)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.cfg.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	loader := postService.NewLoader(s.index)
	loader.SetLogger(s.logger)
	view := loader.Load(r.Context())

	s.render(w, http.StatusOK, "posts", s.page(postsPage{
		View:         view,
		Presentation: view.Presentation(),
	}))
}

func (s *Server) handleSignInForm(w http.ResponseWriter, r *http.Request) {
	data := signInPage{}
	if r.URL.Query().Has("signedout") {
		data.Notice = i18n.Text(i18n.KeySignedOut, s.cfg.Locale)
	}
	s.render(w, http.StatusOK, "signin", s.page(data))
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	creds := authDomain.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	nav := authDomain.NavigatorFunc(func(_ context.Context, to authDomain.Destination) {
		http.Redirect(w, r, string(to), http.StatusSeeOther)
	})

	if err := s.auth.Login(r.Context(), creds, nav); err != nil {
		s.render(w, statusFor(err), "signin", s.page(signInPage{
			Username: creds.Username,
			Error:    i18n.Message(err, s.cfg.Locale),
		}))
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.session.Get(); !ok {
		http.Redirect(w, r, string(authDomain.DestinationSignIn), http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "dashboard", s.page(s.dashboard(&adminDomain.Form{}, "", nil)))
}

func (s *Server) handleSubmitFeed(w http.ResponseWriter, r *http.Request) {
	form := &adminDomain.Form{URL: r.PostFormValue("url")}

	err := s.admin.Submit(r.Context(), form)
	if err != nil {
		s.render(w, statusFor(err), "dashboard", s.page(s.dashboard(form, "", err)))
		return
	}
	s.render(w, http.StatusOK, "dashboard", s.page(s.dashboard(form, i18n.Text(i18n.KeyFeedAdded, s.cfg.Locale), nil)))
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Clear(); err != nil {
		s.render(w, http.StatusInternalServerError, "signin", s.page(signInPage{
			Error: i18n.Message(err, s.cfg.Locale),
		}))
		return
	}
	http.Redirect(w, r, string(authDomain.DestinationSignIn)+"?signedout", http.StatusSeeOther)
}

func (s *Server) handleSyndication(format syndicationFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loader := postService.NewLoader(s.index)
		loader.SetLogger(s.logger)
		view := loader.Load(r.Context())
		if view.State != postDomain.LoadStatePopulated {
			http.Error(w, i18n.Text(i18n.KeyUnavailable, s.cfg.Locale), http.StatusServiceUnavailable)
			return
		}

		feed := postService.Syndicate(view.Posts, fmt.Sprintf("%s://%s", getScheme(r), r.Host))
		body, err := format.encode(feed)
		if err != nil {
			s.logger.Error("Error encoding feed", "format", format.name, "error", err)
			http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", format.contentType)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) dashboard(form *adminDomain.Form, notice string, err error) dashboardPage {
	return dashboardPage{
		URL:    form.URL,
		Notice: notice,
		Error:  i18n.Message(err, s.cfg.Locale),
		Busy:   s.admin.Busy(),
	}
}

// sameOrigin rejects state-changing requests sent by another site. The
// stored credential is attached server side, so a cross-site form post
// would otherwise act with it. Requests carrying neither Sec-Fetch-Site nor
// Origin do not come from a browser and pass.
func sameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		if !sameOriginRequest(r) {
			slog.Warn("Rejected cross-origin request", "method", r.Method, "path", r.URL.Path, "origin", r.Header.Get("Origin"))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sameOriginRequest(r *http.Request) bool {
	switch r.Header.Get("Sec-Fetch-Site") {
	case "same-origin", "none":
		return true
	case "":
	default:
		return false
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials), errors.Is(err, apperrors.ErrMissingURL):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials), errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
