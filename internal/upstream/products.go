package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// ProductClient fronts the /productos/ resource.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

func (pc *ProductClient) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return list[domain.Product](ctx, pc.c, "/productos/", filterQuery(filter))
}

func (pc *ProductClient) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := pc.c.get(ctx, fmt.Sprintf("/productos/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (pc *ProductClient) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := pc.c.post(ctx, "/productos/", product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (pc *ProductClient) Update(ctx context.Context, id int64, product domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := pc.c.put(ctx, fmt.Sprintf("/productos/%d/", id), product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (pc *ProductClient) Delete(ctx context.Context, id int64) error {
	return pc.c.delete(ctx, fmt.Sprintf("/productos/%d/", id))
}

// filterQuery translates a ProductFilter into the upstream's query
// parameters, omitting unset values.
func filterQuery(f domain.ProductFilter) url.Values {
	query := url.Values{}
	if f.Name != "" {
		query.Set("nombre", f.Name)
	}
	if f.CategoryID > 0 {
		query.Set("categoria", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.CollectionID > 0 {
		query.Set("coleccion", strconv.FormatInt(f.CollectionID, 10))
	}
	if f.PriceMin != "" {
		query.Set("precio_min", f.PriceMin)
	}
	if f.PriceMax != "" {
		query.Set("precio_max", f.PriceMax)
	}
	if f.StockMin != nil {
		query.Set("stock_min", strconv.Itoa(*f.StockMin))
	}
	if f.StockMax != nil {
		query.Set("stock_max", strconv.Itoa(*f.StockMax))
	}
	if f.Sizes != "" {
		query.Set("tallas", f.Sizes)
	}
	if f.Colors != "" {
		query.Set("colores", f.Colors)
	}
	if f.LowStockOnly {
		query.Set("stock_bajo", "true")
	}
	return query
}
