package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
)

var (
	IndexFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogfeed_index_fetches_total",
		Help: "Post index fetches by outcome",
	}, []string{"outcome"})

	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogfeed_login_attempts_total",
		Help: "Sign-in attempts by outcome",
	}, []string{"outcome"})

	FeedSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogfeed_feed_submissions_total",
		Help: "Feed registration attempts by outcome",
	}, []string{"outcome"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogfeed_backend_request_duration_seconds",
		Help:    "Latency of requests to the aggregation backend",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
	}, []string{"endpoint"})
)

var outcomes = []struct {
	err   error
	label string
}{
	{apperrors.ErrTransport, "transport"},
	{apperrors.ErrBadStatus, "bad_status"},
	{apperrors.ErrMalformedResponse, "malformed"},
	{apperrors.ErrMissingCredentials, "invalid_input"},
	{apperrors.ErrMissingURL, "invalid_input"},
	{apperrors.ErrInvalidCredentials, "invalid_credentials"},
	{apperrors.ErrSessionStorage, "storage"},
	{apperrors.ErrUnauthorized, "unauthorized"},
	{apperrors.ErrBusy, "busy"},
	{apperrors.ErrRejected, "rejected"},
}

// Outcome maps an error to a low-cardinality label value.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}
