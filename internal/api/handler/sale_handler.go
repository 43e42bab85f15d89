package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// SaleHandler fronts the point-of-sale screen.
type SaleHandler struct {
	api ports.SaleAPI
}

func NewSaleHandler(api ports.SaleAPI) *SaleHandler {
	return &SaleHandler{api: api}
}

type saleLineRequest struct {
	ProductID int64   `json:"producto" validate:"required,gt=0"`
	Quantity  int     `json:"cantidad" validate:"required,gt=0"`
	UnitPrice float64 `json:"precio_unitario" validate:"required,gt=0"`
	Subtotal  float64 `json:"subtotal" validate:"gte=0"`
}

type saleRequest struct {
	Channel    string            `json:"canal_venta" validate:"required,oneof=nequi daviplata bancolombia presencial tarjeta"`
	CustomerID *int64            `json:"cliente"`
	EmployeeID int64             `json:"empleado" validate:"required,gt=0"`
	Subtotal   float64           `json:"subtotal" validate:"gte=0"`
	Discount   float64           `json:"descuento" validate:"gte=0"`
	Total      float64           `json:"total" validate:"gte=0"`
	Notes      string            `json:"notas"`
	Lines      []saleLineRequest `json:"detalles" validate:"required,min=1,dive"`
}

func (r saleRequest) toDomain() domain.NewSale {
	lines := make([]domain.SaleLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, domain.SaleLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return domain.NewSale{
		Channel:    r.Channel,
		CustomerID: r.CustomerID,
		EmployeeID: r.EmployeeID,
		Subtotal:   r.Subtotal,
		Discount:   r.Discount,
		Total:      r.Total,
		Notes:      r.Notes,
		Lines:      lines,
	}
}

// List handles GET /api/sales, newest first (upstream ordering).
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Sale
// @Router       /api/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.api.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Create handles POST /api/sales. Stock accounting happens upstream when
// the sale lines are persisted.
//
// @Summary      Register a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      saleRequest  true  "Sale with line items"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sale, err := h.api.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sale)
}
