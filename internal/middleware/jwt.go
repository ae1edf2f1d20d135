package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/veridia/user-provisioning/api/internal/auth"
	"github.com/veridia/user-provisioning/api/internal/status"
)

// JWT validates bearer tokens and stores the caller identity in the request
// context. Requests without a valid principal are rejected with the
// UNAUTHENTICATED kind; no downstream step runs for them.
func JWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthenticated(c)
			}

			claims, err := manager.ParseToken(parts[1])
			if err != nil {
				return unauthenticated(c)
			}

			c.Set(ContextKeyUserID, claims.Subject)
			c.Set(ContextKeyUserEmail, claims.Email)

			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	serr := status.New(status.Unauthenticated, "Debes iniciar sesión")
	return c.JSON(serr.HTTPStatus(), map[string]any{"success": false, "error": serr})
}

// CallerUID extracts the authenticated principal's uid, if any.
func CallerUID(c echo.Context) string {
	if uid, ok := c.Get(ContextKeyUserID).(string); ok {
		return uid
	}
	return ""
}
