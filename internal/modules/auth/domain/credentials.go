package domain

import (
	"context"
	"strings"

	"github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
)

// Credentials is the sign-in form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return errors.ErrMissingCredentials
	}
	return nil
}

// Destination is a place a surface can navigate to.
type Destination string

const (
	DestinationPosts     Destination = "/"
	DestinationSignIn    Destination = "/signin"
	DestinationDashboard Destination = "/dashboard"
)

// Navigator transfers control to another view of the surface that started
// a flow.
type Navigator interface {
	Navigate(ctx context.Context, to Destination)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, to Destination)

func (f NavigatorFunc) Navigate(ctx context.Context, to Destination) {
	f(ctx, to)
}
