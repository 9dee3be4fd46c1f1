package server

import (
	"context"

	"github.com/anujthakur2004/Fashion-Hub/internal/handler"
	appmiddleware "github.com/anujthakur2004/Fashion-Hub/internal/middleware"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	userHandler     *handler.UserHandler
	sessionSecret   string
	userRepo        repository.UserRepository
}

func NewServer(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
	sessionSecret string,
	userRepo repository.UserRepository,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		catalogHandler:  catalogHandler,
		cartHandler:     cartHandler,
		checkoutHandler: checkoutHandler,
		orderHandler:    orderHandler,
		userHandler:     userHandler,
		sessionSecret:   sessionSecret,
		userRepo:        userRepo,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api", appmiddleware.Session(s.sessionSecret, s.userRepo))

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/products", s.catalogHandler.List)
	api.GET("/products/:slug", s.catalogHandler.Detail)

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.userHandler.Register)
	auth.POST("/login", s.userHandler.Login)
	auth.POST("/logout", s.userHandler.Logout)

	// -------- cart (works for anonymous visitors too) --------
	cart := api.Group("/cart")
	cart.GET("", s.cartHandler.View)
	cart.POST("/add/:productID", s.cartHandler.Add)
	cart.POST("/update/:productID", s.cartHandler.UpdateQuantity)
	cart.POST("/update-size/:productID", s.cartHandler.UpdateSize)
	cart.POST("/remove/:productID", s.cartHandler.Remove)

	// -------- authenticated --------
	me := api.Group("", appmiddleware.RequireUser())
	me.GET("/profile", s.userHandler.Profile)
	me.GET("/addresses", s.userHandler.ListAddresses)
	me.POST("/addresses", s.userHandler.AddAddress)
	me.POST("/addresses/:addressID/primary", s.userHandler.SetPrimaryAddress)
	me.DELETE("/addresses/:addressID", s.userHandler.DeleteAddress)

	// -------- checkout / payment callbacks --------
	me.GET("/checkout", s.checkoutHandler.Review)
	me.POST("/checkout/place", s.checkoutHandler.Place)
	me.POST("/checkout/pay", s.checkoutHandler.Pay)
	me.GET("/checkout/success", s.checkoutHandler.HandleSuccess)
	me.GET("/checkout/cancel", s.checkoutHandler.HandleCancel)
	me.GET("/checkout/confirmation", s.checkoutHandler.Confirmation)

	// -------- order history --------
	me.GET("/orders", s.orderHandler.List)
	me.GET("/orders/:orderID", s.orderHandler.Detail)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
