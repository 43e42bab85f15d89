package upstream

import (
	"context"
	"fmt"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// CustomerClient fronts the /clientes/ resource.
type CustomerClient struct {
	c *Client
}

func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{c: c}
}

func (cc *CustomerClient) List(ctx context.Context) ([]domain.Customer, error) {
	return list[domain.Customer](ctx, cc.c, "/clientes/", nil)
}

func (cc *CustomerClient) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	var out domain.Customer
	if err := cc.c.get(ctx, fmt.Sprintf("/clientes/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CustomerClient) Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	var out domain.Customer
	if err := cc.c.post(ctx, "/clientes/", customer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CustomerClient) Update(ctx context.Context, id int64, customer domain.Customer) (*domain.Customer, error) {
	var out domain.Customer
	if err := cc.c.put(ctx, fmt.Sprintf("/clientes/%d/", id), customer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CustomerClient) Delete(ctx context.Context, id int64) error {
	return cc.c.delete(ctx, fmt.Sprintf("/clientes/%d/", id))
}
