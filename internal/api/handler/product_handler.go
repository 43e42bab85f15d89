package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/domain"
	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// ProductHandler fronts the products screen, including its filter bar.
type ProductHandler struct {
	api ports.ProductAPI
}

func NewProductHandler(api ports.ProductAPI) *ProductHandler {
	return &ProductHandler{api: api}
}

type productRequest struct {
	Name         string  `json:"nombre" validate:"required"`
	CategoryID   int64   `json:"categoria" validate:"required,gt=0"`
	CollectionID *int64  `json:"coleccion"`
	Sizes        string  `json:"tallas"`
	Description  string  `json:"descripcion"`
	Image        string  `json:"imagen"`
	UnitPrice    float64 `json:"precio_unitario" validate:"required,gt=0"`
	MinStock     int     `json:"stock_minimo" validate:"gte=0"`
	Active       *bool   `json:"activo"`
}

func (r productRequest) toDomain() domain.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return domain.Product{
		Name:         r.Name,
		CategoryID:   r.CategoryID,
		CollectionID: r.CollectionID,
		Sizes:        r.Sizes,
		Description:  r.Description,
		Image:        r.Image,
		UnitPrice:    strconv.FormatFloat(r.UnitPrice, 'f', 2, 64),
		MinStock:     r.MinStock,
		Active:       active,
	}
}

// List handles GET /api/products with the filter query parameters the
// products screen sends.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     SessionCookie
// @Param        nombre      query     string  false  "Partial name match"
// @Param        categoria   query     int     false  "Category ID"
// @Param        coleccion   query     int     false  "Collection ID"
// @Param        precio_min  query     number  false  "Minimum unit price"
// @Param        precio_max  query     number  false  "Maximum unit price"
// @Param        stock_min   query     int     false  "Minimum current stock"
// @Param        stock_max   query     int     false  "Maximum current stock"
// @Param        tallas      query     string  false  "Sizes, comma separated"
// @Param        colores     query     string  false  "Colors, comma separated"
// @Param        stock_bajo  query     bool    false  "Only low-stock products"
// @Success      200         {array}   domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := domain.ProductFilter{
		Name:         c.QueryParam("nombre"),
		PriceMin:     c.QueryParam("precio_min"),
		PriceMax:     c.QueryParam("precio_max"),
		Sizes:        c.QueryParam("tallas"),
		Colors:       c.QueryParam("colores"),
		LowStockOnly: c.QueryParam("stock_bajo") == "true",
	}
	if v, err := strconv.ParseInt(c.QueryParam("categoria"), 10, 64); err == nil {
		filter.CategoryID = v
	}
	if v, err := strconv.ParseInt(c.QueryParam("coleccion"), 10, 64); err == nil {
		filter.CollectionID = v
	}
	if v, err := strconv.Atoi(c.QueryParam("stock_min")); err == nil {
		filter.StockMin = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("stock_max")); err == nil {
		filter.StockMax = &v
	}

	products, err := h.api.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.api.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products. Stock is not settable here; it moves
// only through sales and inventory movements.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.api.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.api.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.api.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
