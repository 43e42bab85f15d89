package upstream

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// SaleClient fronts the /ventas/ resource.
type SaleClient struct {
	c *Client
}

func NewSaleClient(c *Client) *SaleClient {
	return &SaleClient{c: c}
}

func (sc *SaleClient) List(ctx context.Context) ([]domain.Sale, error) {
	return list[domain.Sale](ctx, sc.c, "/ventas/", nil)
}

func (sc *SaleClient) Create(ctx context.Context, sale domain.NewSale) (*domain.Sale, error) {
	var out domain.Sale
	if err := sc.c.post(ctx, "/ventas/", sale, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
