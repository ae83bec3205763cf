package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBackendURL = errors.New("BACKEND_URL must be an absolute http(s) URL")

	// Backend boundary
	ErrTransport         = errors.New("backend unreachable")
	ErrBadStatus         = errors.New("unexpected backend status")
	ErrMalformedResponse = errors.New("malformed backend response")

	// Sign-in
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionStorage     = errors.New("session storage unavailable")
	ErrNoSession          = errors.New("no stored session")

	// Feed registration
	ErrMissingURL        = errors.New("feed url is required")
	ErrUnauthorized      = errors.New("not signed in")
	ErrBusy              = errors.New("a submission is already in progress")
	ErrRejected          = errors.New("feed registration rejected")
	ErrCredentialRefused = fmt.Errorf("%w: credential refused by server", ErrRejected)
)
