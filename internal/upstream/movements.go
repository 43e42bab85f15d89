package upstream

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// MovementClient fronts the /movimientos-inventario/ resource (restocks,
// adjustments, returns).
type MovementClient struct {
	c *Client
}

func NewMovementClient(c *Client) *MovementClient {
	return &MovementClient{c: c}
}

func (mc *MovementClient) List(ctx context.Context) ([]domain.Movement, error) {
	return list[domain.Movement](ctx, mc.c, "/movimientos-inventario/", nil)
}

func (mc *MovementClient) Create(ctx context.Context, movement domain.Movement) (*domain.Movement, error) {
	var out domain.Movement
	if err := mc.c.post(ctx, "/movimientos-inventario/", movement, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
