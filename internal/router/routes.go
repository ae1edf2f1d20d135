package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veridia/user-provisioning/api/internal/auth"
	"github.com/veridia/user-provisioning/api/internal/config"
	"github.com/veridia/user-provisioning/api/internal/handler"
	middlewarepkg "github.com/veridia/user-provisioning/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth      *handler.AuthHandler
	Provision *handler.ProvisionHandler
}

// Register wires all HTTP routes for the API. The createUser route carries
// the JWT guard so anonymous callers are rejected before the handler runs;
// the admin-role decision itself happens inside the provisioning flow.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/login", handlers.Auth.Login)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))
	secured.POST("/createUser", handlers.Provision.CreateUser, middlewarepkg.ProvisionRateLimiter(cfg.RateLimitProvision))
}
