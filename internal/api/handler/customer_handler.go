package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// CustomerHandler fronts the customers screen.
type CustomerHandler struct {
	api ports.CustomerAPI
}

func NewCustomerHandler(api ports.CustomerAPI) *CustomerHandler {
	return &CustomerHandler{api: api}
}

type customerRequest struct {
	Name         string `json:"nombre" validate:"required"`
	Type         string `json:"tipo_cliente" validate:"required,oneof=minorista mayorista internacional"`
	Email        string `json:"correo" validate:"omitempty,email"`
	Phone        string `json:"telefono" validate:"required"`
	Address      string `json:"direccion"`
	Instagram    string `json:"instagram"`
	BusinessName string `json:"nombre_negocio"`
	TaxID        string `json:"nit_rut"`
	Active       *bool  `json:"activo"`
}

func (r customerRequest) toDomain() domain.Customer {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return domain.Customer{
		Name:         r.Name,
		Type:         r.Type,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		Instagram:    r.Instagram,
		BusinessName: r.BusinessName,
		TaxID:        r.TaxID,
		Active:       active,
	}
}

// List handles GET /api/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}   domain.Customer
// @Failure      401  {object}  map[string]string
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.api.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	customer, err := h.api.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Create handles POST /api/customers.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	customer, err := h.api.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	customer, err := h.api.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.api.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
