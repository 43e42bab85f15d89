package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// EmployeeHandler fronts the employees screen.
type EmployeeHandler struct {
	api ports.EmployeeAPI
}

func NewEmployeeHandler(api ports.EmployeeAPI) *EmployeeHandler {
	return &EmployeeHandler{api: api}
}

type employeeUserRequest struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
}

type employeeRequest struct {
	User    employeeUserRequest `json:"user" validate:"required"`
	Phone   string              `json:"telefono"`
	HiredAt string              `json:"fecha_contratacion"`
	IsStaff *bool               `json:"is_staff"`
	Active  *bool               `json:"activo"`
}

func (r employeeRequest) toDomain() domain.NewEmployee {
	return domain.NewEmployee{
		User: domain.NewEmployeeUser{
			Username:  r.User.Username,
			FirstName: r.User.FirstName,
			LastName:  r.User.LastName,
			Email:     r.User.Email,
			Password:  r.User.Password,
		},
		Phone:   r.Phone,
		HiredAt: r.HiredAt,
		IsStaff: r.IsStaff,
		Active:  r.Active,
	}
}

// List handles GET /api/employees. The optional "activo" query parameter
// narrows to active or inactive staff.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     SessionCookie
// @Param        activo  query     bool  false  "Filter by active flag"
// @Success      200     {array}   domain.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	var activeOnly *bool
	switch c.QueryParam("activo") {
	case "true":
		v := true
		activeOnly = &v
	case "false":
		v := false
		activeOnly = &v
	}

	employees, err := h.api.List(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Me handles GET /api/employees/me, the employee record of the logged-in
// account, used by the sales screen to attribute the sale.
//
// @Summary      Current employee profile
// @Tags         employees
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.Employee
// @Router       /api/employees/me [get]
func (h *EmployeeHandler) Me(c echo.Context) error {
	employee, err := h.api.Me(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Get handles GET /api/employees/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	employee, err := h.api.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      employeeRequest  true  "Employee details with nested account"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	employee, err := h.api.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	employee, err := h.api.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.api.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
