package ports

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// CredentialStore is the durable three-slot storage backing a console
// session: access_token, refresh_token and the derived is_admin flag.
// Both the session service and the upstream gateway read and write the same
// slots; there is no transactional discipline, last writer wins.
type CredentialStore interface {
	// SaveCredentials writes both token slots in one call.
	SaveCredentials(ctx context.Context, sessionID string, pair domain.CredentialPair) error
	// SetAccessToken overwrites only the access slot (used after a refresh).
	SetAccessToken(ctx context.Context, sessionID, token string) error
	// SetAdminFlag persists the derived admin hint alongside the tokens.
	SetAdminFlag(ctx context.Context, sessionID string, isAdmin bool) error

	// AccessToken returns the stored access token, or "" when the slot is empty.
	AccessToken(ctx context.Context, sessionID string) (string, error)
	// RefreshToken returns the stored refresh token, or "" when the slot is empty.
	RefreshToken(ctx context.Context, sessionID string) (string, error)
	// AdminFlag returns the persisted admin hint; false when the slot is empty.
	AdminFlag(ctx context.Context, sessionID string) (bool, error)

	// ClearAccessToken deletes only the access slot.
	ClearAccessToken(ctx context.Context, sessionID string) error
	// ClearTokens deletes both token slots, leaving the admin hint to expire
	// on its own.
	ClearTokens(ctx context.Context, sessionID string) error
	// Clear deletes all three slots.
	Clear(ctx context.Context, sessionID string) error
}
