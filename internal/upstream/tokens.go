package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// TokenClient talks to the upstream token endpoints. It deliberately uses a
// plain client with no auth transport: token issuance and refresh are the
// two calls that must never themselves trigger a refresh.
type TokenClient struct {
	c *Client
}

func NewTokenClient(c *Client) *TokenClient {
	return &TokenClient{c: c}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// IssueTokens exchanges username+password for a credential pair via
// POST /token/.
func (t *TokenClient) IssueTokens(ctx context.Context, username, password string) (domain.CredentialPair, error) {
	var resp tokenResponse
	err := t.c.post(ctx, "/token/", tokenRequest{Username: username, Password: password}, &resp)
	if err != nil {
		if upstreamStatus(err) == http.StatusUnauthorized {
			return domain.CredentialPair{}, domain.ErrInvalidCredentials
		}
		return domain.CredentialPair{}, err
	}
	if resp.Access == "" || resp.Refresh == "" {
		return domain.CredentialPair{}, fmt.Errorf("token endpoint returned incomplete pair")
	}
	return domain.CredentialPair{AccessToken: resp.Access, RefreshToken: resp.Refresh}, nil
}

// RefreshAccess exchanges a refresh token for a new access token via
// POST /token/refresh/.
func (t *TokenClient) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	var resp refreshResponse
	if err := t.c.post(ctx, "/token/refresh/", refreshRequest{Refresh: refreshToken}, &resp); err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", fmt.Errorf("refresh endpoint returned no access token")
	}
	return resp.Access, nil
}

// upstreamStatus unwraps the status code of an UpstreamError, or 0.
func upstreamStatus(err error) int {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}
