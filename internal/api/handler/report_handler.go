package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// ReportHandler fronts the read-only sales report view.
type ReportHandler struct {
	api ports.ReportAPI
}

func NewReportHandler(api ports.ReportAPI) *ReportHandler {
	return &ReportHandler{api: api}
}

// validPeriods are the ranges the report screen offers.
var validPeriods = map[string]bool{
	"1m":  true,
	"3m":  true,
	"6m":  true,
	"12m": true,
}

// SalesSummary handles GET /api/reports/sales/summary?period=.
//
// @Summary      Aggregated sales report
// @Tags         reports
// @Produce      json
// @Security     SessionCookie
// @Param        period  query     string  false  "Range: 1m, 3m, 6m or 12m (default 1m)"
// @Success      200     {object}  domain.SalesReport
// @Failure      400     {object}  map[string]string
// @Router       /api/reports/sales/summary [get]
func (h *ReportHandler) SalesSummary(c echo.Context) error {
	period := c.QueryParam("period")
	if period == "" {
		period = "1m"
	}
	if !validPeriods[period] {
		return domain.ErrInvalidPeriod
	}

	report, err := h.api.SalesSummary(c.Request().Context(), period)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
