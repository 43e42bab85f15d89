package ports

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// SessionService owns the authentication lifecycle of a console session.
type SessionService interface {
	// Bootstrap restores session state from the credential store. An empty
	// access slot yields an anonymous session; a stored token that fails to
	// decode clears all three slots and also yields an anonymous session.
	// Only storage failures are reported as errors.
	Bootstrap(ctx context.Context, sessionID string) (*domain.Session, error)

	// Login exchanges credentials at the upstream token endpoint, persists
	// the issued pair plus the derived admin flag under a freshly minted
	// session ID, and returns the decoded identity. The caller's previous
	// session ID is never reused as the storage key (a pre-planted cookie
	// would otherwise hand its holder the new tokens); its slots are cleared
	// on success. Bad credentials return domain.ErrInvalidCredentials with
	// no state mutation.
	Login(ctx context.Context, previousSessionID, username, password string) (*domain.Session, error)

	// Logout clears all three slots regardless of prior state. No upstream
	// revoke call is made; the refresh token stays valid server-side until
	// it expires on its own.
	Logout(ctx context.Context, sessionID string) error
}
