package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// AdminOnly gates console-only views on the session's cached admin hint.
// The hint comes from an unverified token claim, so this is a display-grade
// gate: every proxied call is still authorized by the upstream itself.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(ContextSessionKey).(*domain.Session)
			if sess == nil || !sess.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
