package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/veridia/user-provisioning/api/internal/auth"
	"github.com/veridia/user-provisioning/api/internal/config"
	"github.com/veridia/user-provisioning/api/internal/database"
	"github.com/veridia/user-provisioning/api/internal/handler"
	"github.com/veridia/user-provisioning/api/internal/identity"
	"github.com/veridia/user-provisioning/api/internal/identity/gip"
	"github.com/veridia/user-provisioning/api/internal/identity/local"
	middlewarepkg "github.com/veridia/user-provisioning/api/internal/middleware"
	"github.com/veridia/user-provisioning/api/internal/router"
	"github.com/veridia/user-provisioning/api/internal/service"
	"github.com/veridia/user-provisioning/api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	var accounts identity.Service
	switch cfg.IdentityProvider {
	case config.ProviderGIP:
		accounts = gip.New(nil, cfg.GIPEndpoint, cfg.GIPAPIKey)
	default:
		accounts = local.NewStore(pool)
	}

	profiles := store.NewPGXProfileStore(pool)

	authService := service.NewAuthService(accounts, jwtManager)
	provisioner := service.NewProvisioner(profiles, accounts, cfg.PhoneRegion)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Provision: handler.NewProvisionHandler(provisioner),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
