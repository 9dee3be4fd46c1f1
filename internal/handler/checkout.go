package handler

import (
	"net/http"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/middleware"
	"github.com/anujthakur2004/Fashion-Hub/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Review(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	view, err := h.checkoutService.Review(ctx, user.ID, middleware.SessionID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

// Place persists a pay-on-delivery order straight away.
func (h *CheckoutHandler) Place(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.PlaceCashOrder(ctx, user.ID, middleware.SessionID(c), req.AddressID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

// Pay starts the external payment path and returns the provider URL the
// client must redirect the buyer to.
func (h *CheckoutHandler) Pay(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.BeginExternalPayment(ctx, user.ID, middleware.SessionID(c), req.AddressID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleSuccess is the provider's success redirect target.
func (h *CheckoutHandler) HandleSuccess(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	result, err := h.checkoutService.ConfirmExternalPayment(ctx, user.ID, middleware.SessionID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

// HandleCancel is the provider's cancel redirect target; cart and
// snapshot stay as they were.
func (h *CheckoutHandler) HandleCancel(c echo.Context) error {
	ctx := c.Request().Context()

	status := h.checkoutService.CancelExternalPayment(ctx, middleware.SessionID(c))

	return c.JSON(http.StatusOK, map[string]string{
		"status": status.String(),
		"notice": "payment canceled, your cart is unchanged",
	})
}

func (h *CheckoutHandler) Confirmation(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.checkoutService.Confirmation(ctx, middleware.SessionID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}
