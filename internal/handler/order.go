package handler

import (
	"net/http"
	"strconv"

	"github.com/anujthakur2004/Fashion-Hub/internal/middleware"
	"github.com/anujthakur2004/Fashion-Hub/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderQueryService
}

func NewOrderHandler(orderService service.OrderQueryService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	orders, err := h.orderService.ListForUser(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderService.GetOne(ctx, user.ID, uint(orderID))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}
