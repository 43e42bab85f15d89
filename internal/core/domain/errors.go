package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("not authenticated")

// ErrSessionExpired marks an unrecoverable authorization failure: the
// access token was rejected upstream and could not be refreshed. The
// credential slots have already been cleared when this error surfaces;
// the HTTP layer turns it into a redirect to the login entry point.
var ErrSessionExpired = errors.New("session expired")

var ErrForbidden = errors.New("access forbidden")
var ErrInvalidPeriod = errors.New("invalid report period")

// UpstreamError carries a non-401 failure from the inventory API through to
// the caller unmodified: same status, and the server-provided detail when
// one was present in the response body.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("upstream returned %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Detail)
}
