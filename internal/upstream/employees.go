package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// EmployeeClient fronts the /empleados/ resource.
type EmployeeClient struct {
	c *Client
}

func NewEmployeeClient(c *Client) *EmployeeClient {
	return &EmployeeClient{c: c}
}

func (ec *EmployeeClient) List(ctx context.Context, activeOnly *bool) ([]domain.Employee, error) {
	query := url.Values{}
	if activeOnly != nil {
		query.Set("activo", strconv.FormatBool(*activeOnly))
	}
	return list[domain.Employee](ctx, ec.c, "/empleados/", query)
}

// Me returns the employee record bound to the session's account.
func (ec *EmployeeClient) Me(ctx context.Context) (*domain.Employee, error) {
	var out domain.Employee
	if err := ec.c.get(ctx, "/empleados/me/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ec *EmployeeClient) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	var out domain.Employee
	if err := ec.c.get(ctx, fmt.Sprintf("/empleados/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ec *EmployeeClient) Create(ctx context.Context, employee domain.NewEmployee) (*domain.Employee, error) {
	var out domain.Employee
	if err := ec.c.post(ctx, "/empleados/", employee, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ec *EmployeeClient) Update(ctx context.Context, id int64, employee domain.NewEmployee) (*domain.Employee, error) {
	var out domain.Employee
	if err := ec.c.put(ctx, fmt.Sprintf("/empleados/%d/", id), employee, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ec *EmployeeClient) Delete(ctx context.Context, id int64) error {
	return ec.c.delete(ctx, fmt.Sprintf("/empleados/%d/", id))
}
