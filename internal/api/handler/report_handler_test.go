package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

type stubReportAPI struct {
	lastPeriod string
}

func (s *stubReportAPI) SalesSummary(_ context.Context, period string) (*domain.SalesReport, error) {
	s.lastPeriod = period
	return &domain.SalesReport{}, nil
}

func reportContext(t *testing.T, query string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales/summary"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReportHandler_DefaultPeriod(t *testing.T) {
	api := &stubReportAPI{}
	h := NewReportHandler(api)
	c, rec := reportContext(t, "")

	if err := h.SalesSummary(c); err != nil {
		t.Fatalf("SalesSummary returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if api.lastPeriod != "1m" {
		t.Fatalf("missing period must default to 1m, got %q", api.lastPeriod)
	}
}

func TestReportHandler_PeriodPassedThrough(t *testing.T) {
	api := &stubReportAPI{}
	h := NewReportHandler(api)
	c, _ := reportContext(t, "?period=6m")

	if err := h.SalesSummary(c); err != nil {
		t.Fatalf("SalesSummary returned error: %v", err)
	}
	if api.lastPeriod != "6m" {
		t.Fatalf("expected 6m, got %q", api.lastPeriod)
	}
}

func TestReportHandler_InvalidPeriod(t *testing.T) {
	api := &stubReportAPI{}
	h := NewReportHandler(api)
	c, _ := reportContext(t, "?period=2y")

	err := h.SalesSummary(c)
	if !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
	if api.lastPeriod != "" {
		t.Fatalf("upstream must not be called for an invalid period")
	}
}
