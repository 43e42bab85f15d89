package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalprint/petstyle-console/internal/core/ports"
)

// CatalogHandler serves the category and collection lookup lists the
// product filter bar needs.
type CatalogHandler struct {
	api ports.CatalogAPI
}

func NewCatalogHandler(api ports.CatalogAPI) *CatalogHandler {
	return &CatalogHandler{api: api}
}

// Categories handles GET /api/catalog/categories.
//
// @Summary      List product categories
// @Tags         catalog
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Category
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.api.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Collections handles GET /api/catalog/collections.
//
// @Summary      List product collections
// @Tags         catalog
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Collection
// @Router       /api/catalog/collections [get]
func (h *CatalogHandler) Collections(c echo.Context) error {
	collections, err := h.api.Collections(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, collections)
}
