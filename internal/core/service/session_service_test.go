package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

type stubStore struct {
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
	s.access[sid] = pair.AccessToken
	s.refresh[sid] = pair.RefreshToken
	return nil
}

func (s *stubStore) SetAccessToken(_ context.Context, sid, token string) error {
	s.access[sid] = token
	return nil
}

func (s *stubStore) SetAdminFlag(_ context.Context, sid string, isAdmin bool) error {
	s.admin[sid] = isAdmin
	return nil
}

func (s *stubStore) AccessToken(_ context.Context, sid string) (string, error) {
	return s.access[sid], nil
}

func (s *stubStore) RefreshToken(_ context.Context, sid string) (string, error) {
	return s.refresh[sid], nil
}

func (s *stubStore) AdminFlag(_ context.Context, sid string) (bool, error) {
	return s.admin[sid], nil
}

func (s *stubStore) ClearAccessToken(_ context.Context, sid string) error {
	delete(s.access, sid)
	return nil
}

func (s *stubStore) ClearTokens(_ context.Context, sid string) error {
	delete(s.access, sid)
	delete(s.refresh, sid)
	return nil
}

func (s *stubStore) Clear(_ context.Context, sid string) error {
	delete(s.access, sid)
	delete(s.refresh, sid)
	delete(s.admin, sid)
	return nil
}

type stubIssuer struct {
	pair       domain.CredentialPair
	err        error
	issueCalls int
}

func (i *stubIssuer) IssueTokens(context.Context, string, string) (domain.CredentialPair, error) {
	i.issueCalls++
	if i.err != nil {
		return domain.CredentialPair{}, i.err
	}
	return i.pair, nil
}

func (i *stubIssuer) RefreshAccess(context.Context, string) (string, error) {
	return "", errors.New("not used in session tests")
}

type stubAudit struct {
	events []domain.AuthEvent
}

func (a *stubAudit) Record(_ context.Context, event domain.AuthEvent) error {
	a.events = append(a.events, event)
	return nil
}

func (a *stubAudit) Recent(context.Context, int64) ([]domain.AuthEvent, error) {
	out := make([]domain.AuthEvent, len(a.events))
	copy(out, a.events)
	return out, nil
}

// signedToken builds an HS256 token carrying the given display claims. The
// service never verifies the signature, so any key works here.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	return signedToken(t, jwt.MapClaims{
		"user_id":    int64(7),
		"username":   "mrivera",
		"first_name": "Marta",
		"last_name":  "Rivera",
		"is_staff":   true,
	})
}

func TestSessionService_Login_PersistsCredentials(t *testing.T) {
	store := newStubStore()
	audit := &stubAudit{}
	issuer := &stubIssuer{pair: domain.CredentialPair{AccessToken: adminToken(t), RefreshToken: "R1"}}
	svc := NewSessionService(store, issuer, audit, zerolog.Nop())

	session, err := svc.Login(context.Background(), "", "mrivera", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !session.Authenticated() {
		t.Fatalf("expected an authenticated session")
	}
	if session.ID == "" {
		t.Fatalf("expected a minted session ID")
	}
	if session.Identity.Username != "mrivera" || session.Identity.FullName() != "Marta Rivera" {
		t.Fatalf("unexpected identity: %+v", session.Identity)
	}
	if !session.IsAdmin {
		t.Fatalf("is_staff claim should mark the session admin")
	}

	if store.access[session.ID] == "" || store.refresh[session.ID] != "R1" {
		t.Fatalf("credential slots not persisted: %+v", store)
	}
	if !store.admin[session.ID] {
		t.Fatalf("admin slot not persisted")
	}

	if len(audit.events) != 1 || audit.events[0].Kind != domain.EventLogin {
		t.Fatalf("expected a login audit event, got %+v", audit.events)
	}
}

func TestSessionService_Login_NeverReusesCallerSessionID(t *testing.T) {
	store := newStubStore()
	// Slot state an attacker could have planted under a cookie value they
	// know. After the victim logs in, this ID must hold nothing.
	store.access["fixed-sid"] = "stale"
	store.admin["fixed-sid"] = true
	issuer := &stubIssuer{pair: domain.CredentialPair{AccessToken: adminToken(t), RefreshToken: "victim-refresh"}}
	svc := NewSessionService(store, issuer, &stubAudit{}, zerolog.Nop())

	session, err := svc.Login(context.Background(), "fixed-sid", "mrivera", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.ID == "" || session.ID == "fixed-sid" {
		t.Fatalf("login must mint a fresh session ID, got %q", session.ID)
	}
	if store.access["fixed-sid"] != "" || store.refresh["fixed-sid"] != "" || store.admin["fixed-sid"] {
		t.Fatalf("previous session slots must be cleared, got %+v", store)
	}
	if store.refresh[session.ID] != "victim-refresh" {
		t.Fatalf("tokens must live under the minted ID only")
	}
}

func TestSessionService_Login_MintsDistinctIDs(t *testing.T) {
	store := newStubStore()
	issuer := &stubIssuer{pair: domain.CredentialPair{AccessToken: adminToken(t), RefreshToken: "R1"}}
	svc := NewSessionService(store, issuer, nil, zerolog.Nop())

	first, err := svc.Login(context.Background(), "", "mrivera", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	second, err := svc.Login(context.Background(), first.ID, "mrivera", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("re-login reused the session ID %q", first.ID)
	}
	if store.access[first.ID] != "" {
		t.Fatalf("slots of the replaced session must be cleared")
	}
}

func TestSessionService_Login_EmptyCredentials(t *testing.T) {
	store := newStubStore()
	issuer := &stubIssuer{}
	svc := NewSessionService(store, issuer, &stubAudit{}, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "s1", "", "secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if issuer.issueCalls != 0 {
		t.Fatalf("upstream must not be called with empty credentials")
	}
}

func TestSessionService_Login_BadCredentialsLeaveStoreUntouched(t *testing.T) {
	store := newStubStore()
	audit := &stubAudit{}
	issuer := &stubIssuer{err: domain.ErrInvalidCredentials}
	svc := NewSessionService(store, issuer, audit, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "s1", "mrivera", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.access) != 0 || len(store.refresh) != 0 || len(store.admin) != 0 {
		t.Fatalf("store must stay untouched on failed login: %+v", store)
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.EventLoginFailed {
		t.Fatalf("expected a login_failed audit event, got %+v", audit.events)
	}
}

func TestSessionService_Bootstrap_EmptySessionID(t *testing.T) {
	svc := NewSessionService(newStubStore(), &stubIssuer{}, nil, zerolog.Nop())

	session, err := svc.Bootstrap(context.Background(), "")
	if err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if session.Authenticated() {
		t.Fatalf("expected an anonymous session")
	}
}

func TestSessionService_Bootstrap_RestoresIdentity(t *testing.T) {
	store := newStubStore()
	store.access["s1"] = adminToken(t)
	store.admin["s1"] = true
	svc := NewSessionService(store, &stubIssuer{}, nil, zerolog.Nop())

	session, err := svc.Bootstrap(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if !session.Authenticated() {
		t.Fatalf("expected an authenticated session")
	}
	if session.Identity.UserID != 7 || !session.IsAdmin {
		t.Fatalf("unexpected restored session: %+v", session)
	}
}

func TestSessionService_Bootstrap_MalformedTokenClearsSlots(t *testing.T) {
	store := newStubStore()
	store.access["s1"] = "not-a-jwt"
	store.refresh["s1"] = "R1"
	store.admin["s1"] = true
	svc := NewSessionService(store, &stubIssuer{}, nil, zerolog.Nop())

	session, err := svc.Bootstrap(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if session.Authenticated() {
		t.Fatalf("undecodable token must yield an anonymous session")
	}
	if len(store.access) != 0 || len(store.refresh) != 0 || len(store.admin) != 0 {
		t.Fatalf("expected all slots cleared, got %+v", store)
	}
}

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	store := newStubStore()
	store.access["s1"] = adminToken(t)
	store.refresh["s1"] = "R1"
	store.admin["s1"] = true
	audit := &stubAudit{}
	svc := NewSessionService(store, &stubIssuer{}, audit, zerolog.Nop())

	if err := svc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if len(store.access) != 0 || len(store.refresh) != 0 || len(store.admin) != 0 {
		t.Fatalf("expected all slots cleared, got %+v", store)
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.EventLogout {
		t.Fatalf("expected a logout audit event, got %+v", audit.events)
	}
}
