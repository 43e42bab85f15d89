package upstream

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// CatalogClient fronts the /categorias/ and /colecciones/ lookup lists.
type CatalogClient struct {
	c *Client
}

func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{c: c}
}

func (cc *CatalogClient) Categories(ctx context.Context) ([]domain.Category, error) {
	return list[domain.Category](ctx, cc.c, "/categorias/", nil)
}

func (cc *CatalogClient) Collections(ctx context.Context) ([]domain.Collection, error) {
	return list[domain.Collection](ctx, cc.c, "/colecciones/", nil)
}
