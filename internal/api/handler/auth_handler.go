package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/api/metrics"
	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
	"github.com/animalprint/petstyle-console/internal/infrastructure/config"
)

// AuthHandler owns the session lifecycle endpoints: login, logout, the UI
// bootstrap view, and the admin-only activity trail.
type AuthHandler struct {
	sessions ports.SessionService
	audit    ports.AuthAuditRepository
	cookie   config.SessionConfig
}

func NewAuthHandler(sessions ports.SessionService, audit ports.AuthAuditRepository, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, audit: audit, cookie: cookie}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	IsAdmin   bool   `json:"is_admin"`
}

type sessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *userResponse `json:"user,omitempty"`
}

// Login authenticates against the upstream token endpoint and binds the
// issued credential pair to a console session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Staff credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// The service mints a fresh session ID on every login; the previous
	// cookie value is only passed along so its slots get cleared.
	previous := ""
	if cookie, err := c.Cookie(h.cookie.CookieName); err == nil {
		previous = cookie.Value
	}

	sess, err := h.sessions.Login(c.Request().Context(), previous, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setCookie(c, sess.ID, int(h.cookie.TTL.Seconds()))

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		User:          toUserResponse(sess),
	})
}

// Logout clears the credential slots and expires the session cookie. The
// upstream refresh token is not revoked server-side; it ages out on its own.
//
// @Summary      Log out
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	h.setCookie(c, "", -1)
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state so the UI can decide between
// the login screen and the protected area. Anonymous is a 200, not a 401:
// this endpoint is the bootstrap read, not a guard.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(h.cookie.CookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}

	sess, err := h.sessions.Bootstrap(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: toUserResponse(sess)})
}

type activityResponse struct {
	Events []domain.AuthEvent `json:"events"`
}

// Activity returns the recent sign-in activity trail.
//
// @Summary      Sign-in activity
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  activityResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/activity [get]
func (h *AuthHandler) Activity(c echo.Context) error {
	if _, err := sessionFrom(c); err != nil {
		return err
	}

	events, err := h.audit.Recent(c.Request().Context(), 50)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityResponse{Events: events})
}

func (h *AuthHandler) setCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toUserResponse(sess *domain.Session) *userResponse {
	return &userResponse{
		Username:  sess.Identity.Username,
		FirstName: sess.Identity.FirstName,
		LastName:  sess.Identity.LastName,
		FullName:  sess.Identity.FullName(),
		IsAdmin:   sess.IsAdmin,
	}
}
