package handler

import (
	"net/http"

	"github.com/anujthakur2004/Fashion-Hub/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListAvailable(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}
