package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/api/middleware"
	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// sessionFrom extracts the session injected by the Session middleware and
// fast-fails before any upstream call when it is missing: presence proves
// the guard ran on this route.
func sessionFrom(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.ContextSessionKey).(*domain.Session)
	if sess == nil || !sess.Authenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
