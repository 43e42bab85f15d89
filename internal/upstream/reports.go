package upstream

import (
	"context"
	"net/url"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// ReportClient fronts the aggregated sales report endpoint.
type ReportClient struct {
	c *Client
}

func NewReportClient(c *Client) *ReportClient {
	return &ReportClient{c: c}
}

// SalesSummary fetches /ventas/reportes/resumen/ for a period already
// validated at the console boundary (1m, 3m, 6m, 12m).
func (rc *ReportClient) SalesSummary(ctx context.Context, period string) (*domain.SalesReport, error) {
	query := url.Values{}
	query.Set("periodo", period)

	var out domain.SalesReport
	if err := rc.c.get(ctx, "/ventas/reportes/resumen/", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
