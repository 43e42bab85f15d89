package upstream

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/animalprint/petstyle-console/internal/api/metrics"
	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// AuthTransport is the interceptor chain of the gateway. On the way out it
// attaches the session's access token as a bearer credential; on the way
// back it recovers from a single 401 by refreshing the access token and
// replaying the original request once.
//
// The retry is gated by a per-request marker, so a request is never replayed
// more than once regardless of what the replay returns. Concurrent requests
// hitting 401 at the same time each refresh independently; the last writer
// wins on the access slot.
type AuthTransport struct {
	base   http.RoundTripper
	store  ports.CredentialStore
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthTransport(base http.RoundTripper, store ports.CredentialStore, tokens ports.TokenIssuer, log zerolog.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{base: base, store: store, tokens: tokens, log: log}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	sessionID := SessionIDFromContext(ctx)

	out := req.Clone(ctx)
	if sessionID != "" {
		token, err := t.store.AccessToken(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusUnauthorized || sessionID == "" {
		return resp, err
	}

	// 401 with a session attached. Only the first one per request triggers
	// a refresh; a replayed request surfaces its 401 as-is.
	if isRetried(ctx) {
		return resp, nil
	}

	refreshToken, err := t.store.RefreshToken(ctx, sessionID)
	if err != nil {
		drain(resp)
		return nil, err
	}

	if refreshToken == "" {
		drain(resp)
		metrics.ForcedLogoutsTotal.Inc()
		if err := t.store.ClearAccessToken(ctx, sessionID); err != nil {
			t.log.Warn().Err(err).Str("session_id", sessionID).Msg("clearing access token after 401")
		}
		return nil, domain.ErrSessionExpired
	}

	newAccess, err := t.tokens.RefreshAccess(ctx, refreshToken)
	if err != nil {
		drain(resp)
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		metrics.ForcedLogoutsTotal.Inc()
		t.log.Info().Err(err).Str("session_id", sessionID).Msg("token refresh failed, session invalidated")
		if clearErr := t.store.ClearTokens(ctx, sessionID); clearErr != nil {
			t.log.Warn().Err(clearErr).Str("session_id", sessionID).Msg("clearing tokens after failed refresh")
		}
		return nil, domain.ErrSessionExpired
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	if err := t.store.SetAccessToken(ctx, sessionID, newAccess); err != nil {
		drain(resp)
		return nil, err
	}

	retry := req.Clone(markRetried(ctx))
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			drain(resp)
			return nil, bodyErr
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+newAccess)

	drain(resp)
	return t.RoundTrip(retry)
}

// drain discards the rest of a response body so the underlying connection
// can be reused.
func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
