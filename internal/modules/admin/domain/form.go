package domain

import (
	"strings"

	"github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
)

// FeedRegistration is the body of one admin submission.
type FeedRegistration struct {
	URL string `json:"url"`
}

// Form is the dashboard input. URL is cleared once a submission succeeds
// and left as typed otherwise.
type Form struct {
	URL string
}

func (f *Form) Validate() error {
	if strings.TrimSpace(f.URL) == "" {
		return errors.ErrMissingURL
	}
	return nil
}

func (f *Form) Registration() FeedRegistration {
	return FeedRegistration{URL: strings.TrimSpace(f.URL)}
}

func (f *Form) Reset() {
	f.URL = ""
}
