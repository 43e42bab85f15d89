package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/upstream"
)

type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) Bootstrap(_ context.Context, sessionID string) (*domain.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return &domain.Session{ID: sessionID}, nil
}

func (s *stubSessions) Login(context.Context, string, string, string) (*domain.Session, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubSessions) Logout(context.Context, string) error {
	return nil
}

func newGuardedContext(t *testing.T, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "petstyle_session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_MissingCookie(t *testing.T) {
	guard := Session("petstyle_session", &stubSessions{})
	c, _ := newGuardedContext(t, "")

	err := guard(func(echo.Context) error {
		t.Fatalf("handler must not run without a cookie")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestSession_AnonymousSession(t *testing.T) {
	guard := Session("petstyle_session", &stubSessions{})
	c, _ := newGuardedContext(t, "unknown-session")

	err := guard(func(echo.Context) error {
		t.Fatalf("handler must not run for an anonymous session")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestSession_AuthenticatedPassesThrough(t *testing.T) {
	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Identity: &domain.Identity{UserID: 7, Username: "mrivera"}},
	}}
	guard := Session("petstyle_session", sessions)
	c, _ := newGuardedContext(t, "s1")

	var handlerRan bool
	err := guard(func(c echo.Context) error {
		handlerRan = true
		sess, _ := c.Get(ContextSessionKey).(*domain.Session)
		if sess == nil || sess.Identity.Username != "mrivera" {
			t.Fatalf("session missing from echo context: %+v", sess)
		}
		if got := upstream.SessionIDFromContext(c.Request().Context()); got != "s1" {
			t.Fatalf("request context not tagged with session ID, got %q", got)
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if !handlerRan {
		t.Fatalf("handler did not run")
	}
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()

	run := func(sess *domain.Session) (int, bool) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/activity", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if sess != nil {
			c.Set(ContextSessionKey, sess)
		}
		var ran bool
		_ = AdminOnly()(func(echo.Context) error {
			ran = true
			return nil
		})(c)
		return rec.Code, ran
	}

	if code, ran := run(&domain.Session{ID: "s1", Identity: &domain.Identity{}}); code != http.StatusForbidden || ran {
		t.Fatalf("non-admin should get 403, got code=%d ran=%v", code, ran)
	}
	if code, ran := run(nil); code != http.StatusForbidden || ran {
		t.Fatalf("missing session should get 403, got code=%d ran=%v", code, ran)
	}
	if _, ran := run(&domain.Session{ID: "s1", IsAdmin: true, Identity: &domain.Identity{IsStaff: true}}); !ran {
		t.Fatalf("admin session should pass through")
	}
}
