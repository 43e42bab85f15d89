package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// MovementHandler fronts the inventory movements screen (restocks,
// withdrawals, adjustments, returns).
type MovementHandler struct {
	api ports.MovementAPI
}

func NewMovementHandler(api ports.MovementAPI) *MovementHandler {
	return &MovementHandler{api: api}
}

type movementRequest struct {
	ProductID  int64  `json:"producto" validate:"required,gt=0"`
	Type       string `json:"tipo" validate:"required,oneof=entrada salida ajuste devolucion"`
	Quantity   int    `json:"cantidad" validate:"required,gt=0"`
	EmployeeID *int64 `json:"empleado"`
	Reason     string `json:"motivo"`
}

func (r movementRequest) toDomain() domain.Movement {
	return domain.Movement{
		ProductID:  r.ProductID,
		Type:       r.Type,
		Quantity:   r.Quantity,
		EmployeeID: r.EmployeeID,
		Reason:     r.Reason,
	}
}

// List handles GET /api/inventory/movements.
//
// @Summary      List inventory movements
// @Tags         inventory
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Movement
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) List(c echo.Context) error {
	movements, err := h.api.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movements)
}

// Create handles POST /api/inventory/movements. The upstream applies the
// stock delta when it persists the movement.
//
// @Summary      Register an inventory movement
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      movementRequest  true  "Movement details"
// @Success      201   {object}  domain.Movement
// @Failure      400   {object}  map[string]string
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Create(c echo.Context) error {
	var req movementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	movement, err := h.api.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, movement)
}
