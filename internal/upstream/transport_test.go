package upstream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

type stubStore struct {
	mu      sync.Mutex
	access  map[string]string
	refresh map[string]string
	admin   map[string]bool
}

func newStubStore() *stubStore {
	return &stubStore{
		access:  make(map[string]string),
		refresh: make(map[string]string),
		admin:   make(map[string]bool),
	}
}

func (s *stubStore) SaveCredentials(_ context.Context, sid string, pair domain.CredentialPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access[sid] = pair.AccessToken
	s.refresh[sid] = pair.RefreshToken
	return nil
}

func (s *stubStore) SetAccessToken(_ context.Context, sid, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access[sid] = token
	return nil
}

func (s *stubStore) SetAdminFlag(_ context.Context, sid string, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin[sid] = isAdmin
	return nil
}

func (s *stubStore) AccessToken(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access[sid], nil
}

func (s *stubStore) RefreshToken(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh[sid], nil
}

func (s *stubStore) AdminFlag(_ context.Context, sid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin[sid], nil
}

func (s *stubStore) ClearAccessToken(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.access, sid)
	return nil
}

func (s *stubStore) ClearTokens(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.access, sid)
	delete(s.refresh, sid)
	return nil
}

func (s *stubStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.access, sid)
	delete(s.refresh, sid)
	delete(s.admin, sid)
	return nil
}

type stubIssuer struct {
	mu           sync.Mutex
	refreshCalls int
	newAccess    string
	refreshErr   error
	seenRefresh  string
}

func (i *stubIssuer) IssueTokens(context.Context, string, string) (domain.CredentialPair, error) {
	return domain.CredentialPair{}, errors.New("not used in transport tests")
}

func (i *stubIssuer) RefreshAccess(_ context.Context, refreshToken string) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.refreshCalls++
	i.seenRefresh = refreshToken
	if i.refreshErr != nil {
		return "", i.refreshErr
	}
	return i.newAccess, nil
}

func (i *stubIssuer) calls() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.refreshCalls
}

func doRequest(t *testing.T, transport *AuthTransport, method, url, sessionID string, body []byte) (*http.Response, error) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if sessionID != "" {
		req = req.WithContext(WithSessionID(req.Context(), sessionID))
	}
	return transport.RoundTrip(req)
}

func TestAuthTransport_AttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	transport := NewAuthTransport(nil, store, &stubIssuer{}, zerolog.Nop())

	resp, err := doRequest(t, transport, http.MethodGet, srv.URL, "s1", nil)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer A1" {
		t.Fatalf("expected Bearer A1, got %q", gotAuth)
	}
}

func TestAuthTransport_NoSessionNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	transport := NewAuthTransport(nil, store, &stubIssuer{}, zerolog.Nop())

	resp, err := doRequest(t, transport, http.MethodGet, srv.URL, "", nil)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestAuthTransport_RefreshAndReplayOn401(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		mu.Lock()
		seen = append(seen, auth)
		mu.Unlock()
		if auth != "Bearer A2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	store.refresh["s1"] = "R1"
	issuer := &stubIssuer{newAccess: "A2"}
	transport := NewAuthTransport(nil, store, issuer, zerolog.Nop())

	resp, err := doRequest(t, transport, http.MethodGet, srv.URL, "s1", nil)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after replay, got %d", resp.StatusCode)
	}
	if issuer.calls() != 1 {
		t.Fatalf("expected exactly one refresh call, got %d", issuer.calls())
	}
	if issuer.seenRefresh != "R1" {
		t.Fatalf("refresh called with %q, want R1", issuer.seenRefresh)
	}
	if got, _ := store.AccessToken(context.Background(), "s1"); got != "A2" {
		t.Fatalf("access slot not updated, got %q", got)
	}
	if len(seen) != 2 || seen[0] != "Bearer A1" || seen[1] != "Bearer A2" {
		t.Fatalf("unexpected request sequence: %v", seen)
	}
}

func TestAuthTransport_ReplaysRequestBody(t *testing.T) {
	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer A2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	store.refresh["s1"] = "R1"
	transport := NewAuthTransport(nil, store, &stubIssuer{newAccess: "A2"}, zerolog.Nop())

	resp, err := doRequest(t, transport, http.MethodPost, srv.URL, "s1", []byte(`{"nombre":"collar"}`))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	resp.Body.Close()

	if len(bodies) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(bodies))
	}
	if bodies[0] != bodies[1] || bodies[1] != `{"nombre":"collar"}` {
		t.Fatalf("replayed body differs: %v", bodies)
	}
}

func TestAuthTransport_MissingRefreshTokenExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	issuer := &stubIssuer{newAccess: "A2"}
	transport := NewAuthTransport(nil, store, issuer, zerolog.Nop())

	_, err := doRequest(t, transport, http.MethodGet, srv.URL, "s1", nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if issuer.calls() != 0 {
		t.Fatalf("refresh must not be attempted without a refresh token")
	}
	if got, _ := store.AccessToken(context.Background(), "s1"); got != "" {
		t.Fatalf("access slot should be cleared, got %q", got)
	}
}

func TestAuthTransport_FailedRefreshClearsTokens(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	store.refresh["s1"] = "R1"
	issuer := &stubIssuer{refreshErr: errors.New("token blacklisted")}
	transport := NewAuthTransport(nil, store, issuer, zerolog.Nop())

	_, err := doRequest(t, transport, http.MethodGet, srv.URL, "s1", nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if hits != 1 {
		t.Fatalf("request must not be replayed after failed refresh, hits=%d", hits)
	}
	if got, _ := store.AccessToken(context.Background(), "s1"); got != "" {
		t.Fatalf("access slot should be cleared, got %q", got)
	}
	if got, _ := store.RefreshToken(context.Background(), "s1"); got != "" {
		t.Fatalf("refresh slot should be cleared, got %q", got)
	}
}

func TestAuthTransport_RetriesAtMostOnce(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newStubStore()
	store.access["s1"] = "A1"
	store.refresh["s1"] = "R1"
	issuer := &stubIssuer{newAccess: "A2"}
	transport := NewAuthTransport(nil, store, issuer, zerolog.Nop())

	resp, err := doRequest(t, transport, http.MethodGet, srv.URL, "s1", nil)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	resp.Body.Close()

	// The replayed 401 surfaces as-is instead of triggering another refresh.
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected the replayed 401, got %d", resp.StatusCode)
	}
	if hits != 2 {
		t.Fatalf("expected exactly 2 upstream hits, got %d", hits)
	}
	if issuer.calls() != 1 {
		t.Fatalf("expected exactly one refresh, got %d", issuer.calls())
	}
}
