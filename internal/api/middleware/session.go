package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/ports"
	"github.com/animalprint/petstyle-console/internal/upstream"
)

// ContextSessionKey is where the resolved session lives in the echo context.
const ContextSessionKey = "session"

// Session is the route guard for the protected console tree. It resolves the
// session cookie, bootstraps session state from the credential store, and
// rejects the request when no identity is present. On success the resolved
// session is stored in the echo context and the request context is tagged
// with the session ID so the upstream gateway can find its credentials.
func Session(cookieName string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			sess, err := sessions.Bootstrap(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}
			if !sess.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(ContextSessionKey, sess)

			req := c.Request()
			c.SetRequest(req.WithContext(upstream.WithSessionID(req.Context(), sess.ID)))

			return next(c)
		}
	}
}
