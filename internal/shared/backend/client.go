package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	adminDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/domain"
	authDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/metrics"
	"github.com/samber/oops"
)

const (
	PathIndex = "/api/v1/index"
	PathLogin = "/api/v1/login"
	PathAdmin = "/api/v1/admin"

	// AuthScheme prefixes the stored token verbatim. The token is not
	// re-encoded.
	AuthScheme = "Basic"

	StatusOK           = "ok"
	StatusUnauthorized = "unauthorized"

	maxBodyBytes = 8 << 20
)

// StatusResponse is the envelope of the login and admin endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (r StatusResponse) OK() bool {
	return r.Status == StatusOK
}

type LoginResponse struct {
	StatusResponse
	Token string `json:"token"`
}

// Client talks to the aggregation backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.http = client }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, oops.With("backend_url", baseURL).Wrap(errors.ErrMissingBackendURL)
	}

	c := &Client{
		baseURL: u,
		http:    NewHTTPClient(DefaultConfig()),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchIndex reads the public post index. A null data field is an empty
// index; a missing one is malformed.
func (c *Client) FetchIndex(ctx context.Context) ([]postDomain.Post, error) {
	status, body, err := c.do(ctx, http.MethodGet, PathIndex, "", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, oops.In("backend").With("endpoint", PathIndex, "status", status).Wrapf(errors.ErrBadStatus, "HTTP %d", status)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, oops.In("backend").With("endpoint", PathIndex).Wrapf(errors.ErrMalformedResponse, "%v", err)
	}
	raw, ok := envelope["data"]
	if !ok {
		return nil, oops.In("backend").With("endpoint", PathIndex).Wrapf(errors.ErrMalformedResponse, "missing data field")
	}

	posts := []postDomain.Post{}
	if string(raw) == "null" {
		return posts, nil
	}
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, oops.In("backend").With("endpoint", PathIndex).Wrapf(errors.ErrMalformedResponse, "%v", err)
	}
	return posts, nil
}

// Login submits credentials. Any HTTP status is returned as a decoded body;
// only a missing or undecodable response is an error.
func (c *Client) Login(ctx context.Context, creds authDomain.Credentials) (LoginResponse, error) {
	var resp LoginResponse
	status, body, err := c.do(ctx, http.MethodPost, PathLogin, "", creds)
	if err != nil {
		return resp, err
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginResponse{}, oops.In("backend").With("endpoint", PathLogin, "status", status).Wrapf(errors.ErrMalformedResponse, "%v", err)
	}
	return resp, nil
}

// RegisterFeed submits a feed URL on behalf of the holder of token.
func (c *Client) RegisterFeed(ctx context.Context, token string, reg adminDomain.FeedRegistration) (StatusResponse, error) {
	var resp StatusResponse
	status, body, err := c.do(ctx, http.MethodPost, PathAdmin, token, reg)
	if err != nil {
		return resp, err
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return StatusResponse{}, oops.In("backend").With("endpoint", PathAdmin, "status", status).Wrapf(errors.ErrMalformedResponse, "%v", err)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, oops.In("backend").With("endpoint", path).Wrap(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return 0, nil, oops.In("backend").With("endpoint", path).Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", AuthScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, nil, oops.In("backend").With("endpoint", path).Wrapf(errors.ErrTransport, "%v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, oops.In("backend").With("endpoint", path, "status", resp.StatusCode).Wrapf(errors.ErrTransport, "%v", err)
	}

	c.logger.Debug("Backend request", "method", method, "endpoint", path, "status", resp.StatusCode, "duration", time.Since(start))
	return resp.StatusCode, data, nil
}
