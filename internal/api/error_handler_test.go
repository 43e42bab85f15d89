package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_SessionExpiredRedirects(t *testing.T) {
	code, resp := handleError(t, domain.ErrSessionExpired)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp.Redirect != "/login" {
		t.Fatalf("expected login redirect, got %q", resp.Redirect)
	}
}

func TestErrorHandler_EchoUnauthorizedRedirects(t *testing.T) {
	code, resp := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp.Redirect != "/login" {
		t.Fatalf("expected login redirect, got %q", resp.Redirect)
	}
}

func TestErrorHandler_UpstreamErrorPassesThrough(t *testing.T) {
	code, resp := handleError(t, &domain.UpstreamError{StatusCode: http.StatusConflict, Detail: "Stock insuficiente"})
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if resp.Error != "Stock insuficiente" {
		t.Fatalf("expected upstream detail, got %q", resp.Error)
	}
	if resp.Redirect != "" {
		t.Fatalf("non-401 must not carry a redirect, got %q", resp.Redirect)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, resp := handleError(t, errors.New("redis: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", resp.Error)
	}
}

func TestErrorHandler_InvalidPeriodIs400(t *testing.T) {
	code, _ := handleError(t, domain.ErrInvalidPeriod)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
