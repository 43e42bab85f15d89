package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// SessionService implements the console session lifecycle: bootstrap from
// storage, login against the upstream token endpoint, logout.
type SessionService struct {
	store  ports.CredentialStore
	tokens ports.TokenIssuer
	audit  ports.AuthAuditRepository
	log    zerolog.Logger
}

func NewSessionService(store ports.CredentialStore, tokens ports.TokenIssuer, audit ports.AuthAuditRepository, log zerolog.Logger) *SessionService {
	return &SessionService{store: store, tokens: tokens, audit: audit, log: log}
}

// accessClaims is the claim set the console reads from an access token.
// Unknown claims are ignored.
type accessClaims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// decodeIdentity extracts display claims from an access token without
// verifying the signature. The console does not hold the upstream signing
// key; an expired token still decodes here and is caught by the upstream's
// own 401 on first use.
func decodeIdentity(accessToken string) (*domain.Identity, error) {
	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	return &domain.Identity{
		UserID:    claims.UserID,
		Username:  claims.Username,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsStaff:   claims.IsStaff,
	}, nil
}

// Bootstrap restores an existing session from the credential store.
// A malformed stored token clears all three slots; the session comes back
// anonymous in that case rather than failing.
func (s *SessionService) Bootstrap(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return &domain.Session{}, nil
	}

	token, err := s.store.AccessToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return &domain.Session{ID: sessionID}, nil
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("stored access token undecodable, clearing session")
		if clearErr := s.store.Clear(ctx, sessionID); clearErr != nil {
			return nil, clearErr
		}
		return &domain.Session{ID: sessionID}, nil
	}

	isAdmin, err := s.store.AdminFlag(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &domain.Session{ID: sessionID, Identity: identity, IsAdmin: isAdmin}, nil
}

// Login exchanges credentials upstream and persists the resulting pair
// under a freshly minted session ID. The caller's previous ID is never
// reused as a storage key: a login must not bind tokens to an identifier
// someone else may already know. Bad credentials return
// domain.ErrInvalidCredentials and leave storage untouched.
func (s *SessionService) Login(ctx context.Context, previousSessionID, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssueTokens(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.recordEvent(ctx, domain.AuthEvent{Kind: domain.EventLoginFailed, SessionID: previousSessionID, Username: username})
		}
		return nil, err
	}

	identity, err := decodeIdentity(pair.AccessToken)
	if err != nil {
		return nil, err
	}

	sessionID := newSessionID()

	if previousSessionID != "" {
		if err := s.store.Clear(ctx, previousSessionID); err != nil {
			s.log.Warn().Err(err).Str("session_id", previousSessionID).Msg("clearing previous session on login")
		}
	}

	if err := s.store.SaveCredentials(ctx, sessionID, pair); err != nil {
		return nil, err
	}
	if err := s.store.SetAdminFlag(ctx, sessionID, identity.IsStaff); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, domain.AuthEvent{
		Kind:      domain.EventLogin,
		SessionID: sessionID,
		Username:  username,
		IsAdmin:   identity.IsStaff,
	})

	return &domain.Session{ID: sessionID, Identity: identity, IsAdmin: identity.IsStaff}, nil
}

// Logout clears all three credential slots. Purely client-side invalidation:
// the upstream is not asked to revoke the refresh token.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.recordEvent(ctx, domain.AuthEvent{Kind: domain.EventLogout, SessionID: sessionID})
	return nil
}

// newSessionID mints an unguessable 128-bit session identifier.
func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// recordEvent writes to the activity trail best-effort; auth operations do
// not fail because the audit store is down.
func (s *SessionService) recordEvent(ctx context.Context, event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := s.audit.Record(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("kind", string(event.Kind)).Msg("audit record failed")
	}
}
