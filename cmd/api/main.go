package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anujthakur2004/Fashion-Hub/internal/client"
	"github.com/anujthakur2004/Fashion-Hub/internal/config"
	"github.com/anujthakur2004/Fashion-Hub/internal/handler"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"
	"github.com/anujthakur2004/Fashion-Hub/internal/server"
	"github.com/anujthakur2004/Fashion-Hub/internal/service"
	"github.com/anujthakur2004/Fashion-Hub/internal/session"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Session.Secret == "" {
		fmt.Println("SESSION_SECRET must be set")
		os.Exit(1)
	}
	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	db := client.InitDB(cfg.DatabaseURL)
	paymentClient := client.NewStripeClient(&cfg.Stripe)

	// session state lives in redis when configured, in process otherwise
	var sessionStore session.Store
	if cfg.Redis.Addr != "" {
		sessionStore = session.NewRedisStore(client.InitRedisClient(&cfg.Redis), sessionTTL)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		sessionStore = session.NewMemoryStore()
	}
	cartStore := session.NewCartStore(sessionStore)
	snapshotStore := session.NewSnapshotStore(sessionStore)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	if cfg.Environment.Name == "development" {
		if err := productRepo.Seed(context.Background()); err != nil {
			log.Println("seed products:", err)
		}
	}

	cartService := service.NewCartService(productRepo, cartStore)
	checkoutService := service.NewCheckoutService(
		cartService,
		cartStore,
		snapshotStore,
		addressRepo,
		orderRepo,
		productRepo,
		paymentClient,
		cfg.BaseURL,
	)
	orderService := service.NewOrderQueryService(orderRepo)
	catalogService := service.NewCatalogService(productRepo)
	userService := service.NewUserService(userRepo, cfg.Session.Secret, sessionTTL)
	addressService := service.NewAddressService(addressRepo)

	srv := server.NewServer(
		handler.NewCatalogHandler(catalogService),
		handler.NewCartHandler(cartService),
		handler.NewCheckoutHandler(checkoutService),
		handler.NewOrderHandler(orderService),
		handler.NewUserHandler(userService, addressService, sessionTTL),
		cfg.Session.Secret,
		userRepo,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
