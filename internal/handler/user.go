package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/middleware"
	"github.com/anujthakur2004/Fashion-Hub/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService    service.UserService
	addressService service.AddressService
	sessionTTL     time.Duration
}

func NewUserHandler(userService service.UserService, addressService service.AddressService, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{
		userService:    userService,
		addressService: addressService,
		sessionTTL:     sessionTTL,
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	profile, err := h.userService.Register(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, profile)
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	// the resolved session id is the visitor's anonymous one here, so
	// a cart built before login survives it
	token, err := h.userService.Login(ctx, &req, middleware.SessionID(c))
	if err != nil {
		return httpError(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	profile, err := h.userService.Profile(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// -------- addresses --------

func (h *UserHandler) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	addresses, err := h.addressService.List(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, addresses)
}

func (h *UserHandler) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.Add(ctx, user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, address)
}

func addressIDFromPath(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("addressID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid address id")
	}
	return uint(id), nil
}

func (h *UserHandler) SetPrimaryAddress(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	addressID, err := addressIDFromPath(c)
	if err != nil {
		return err
	}

	if err := h.addressService.SetPrimary(ctx, user.ID, addressID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := middleware.CurrentUser(c)

	addressID, err := addressIDFromPath(c)
	if err != nil {
		return err
	}

	if err := h.addressService.Delete(ctx, user.ID, addressID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
