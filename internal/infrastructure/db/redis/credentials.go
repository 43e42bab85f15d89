package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

const defaultSessionTTL = 12 * time.Hour

// Slot names mirror the browser storage keys of the original console.
const (
	slotAccessToken  = "access_token"
	slotRefreshToken = "refresh_token"
	slotIsAdmin      = "is_admin"
)

// CredentialStore keeps the three per-session credential slots in Redis.
// Key format: session:<session_id>:<slot>
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCredentialStore creates a CredentialStore wrapping the given Redis
// client. If ttl <= 0, defaultSessionTTL is used.
func NewCredentialStore(client *redis.Client, ttl time.Duration) *CredentialStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &CredentialStore{client: client, ttl: ttl}
}

func (s *CredentialStore) SaveCredentials(ctx context.Context, sessionID string, pair domain.CredentialPair) error {
	if err := s.client.Set(ctx, s.key(sessionID, slotAccessToken), pair.AccessToken, s.ttl).Err(); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID, slotRefreshToken), pair.RefreshToken, s.ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *CredentialStore) SetAccessToken(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, s.key(sessionID, slotAccessToken), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("set access token: %w", err)
	}
	return nil
}

func (s *CredentialStore) SetAdminFlag(ctx context.Context, sessionID string, isAdmin bool) error {
	if err := s.client.Set(ctx, s.key(sessionID, slotIsAdmin), strconv.FormatBool(isAdmin), s.ttl).Err(); err != nil {
		return fmt.Errorf("set admin flag: %w", err)
	}
	return nil
}

func (s *CredentialStore) AccessToken(ctx context.Context, sessionID string) (string, error) {
	return s.slot(ctx, sessionID, slotAccessToken)
}

func (s *CredentialStore) RefreshToken(ctx context.Context, sessionID string) (string, error) {
	return s.slot(ctx, sessionID, slotRefreshToken)
}

func (s *CredentialStore) AdminFlag(ctx context.Context, sessionID string) (bool, error) {
	raw, err := s.slot(ctx, sessionID, slotIsAdmin)
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}

func (s *CredentialStore) ClearAccessToken(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID, slotAccessToken)).Err(); err != nil {
		return fmt.Errorf("clear access token: %w", err)
	}
	return nil
}

func (s *CredentialStore) ClearTokens(ctx context.Context, sessionID string) error {
	keys := []string{
		s.key(sessionID, slotAccessToken),
		s.key(sessionID, slotRefreshToken),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

func (s *CredentialStore) Clear(ctx context.Context, sessionID string) error {
	keys := []string{
		s.key(sessionID, slotAccessToken),
		s.key(sessionID, slotRefreshToken),
		s.key(sessionID, slotIsAdmin),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// slot reads a single slot, mapping redis.Nil to the empty string.
func (s *CredentialStore) slot(ctx context.Context, sessionID, slot string) (string, error) {
	val, err := s.client.Get(ctx, s.key(sessionID, slot)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", slot, err)
	}
	return val, nil
}

func (s *CredentialStore) key(sessionID, slot string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, slot)
}
