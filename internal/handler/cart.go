package handler

import (
	"net/http"
	"strconv"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/middleware"
	"github.com/anujthakur2004/Fashion-Hub/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func productIDFromPath(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("productID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return uint(id), nil
}

func (h *CartHandler) View(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.cartService.Materialize(ctx, middleware.SessionID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.Add(ctx, middleware.SessionID(c), productID, req.Size); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.UpdateQuantity(ctx, middleware.SessionID(c), productID, req.Size, req.Quantity); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) UpdateSize(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.UpdateSize(ctx, middleware.SessionID(c), productID, req.OldSize, req.NewSize); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.Remove(ctx, middleware.SessionID(c), productID, req.Size); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
