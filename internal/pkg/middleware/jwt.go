package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/kurir/internal/pkg/jwt"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// Echo context keys set by JWTAuthMiddleware
const (
	DriverIDKey = "driver_id"
	RoleKey     = "role"
)

// JWTAuthMiddleware authenticates couriers by bearer token. Only the given
// roles are admitted, drivers when none are given.
func JWTAuthMiddleware(config models.JWTConfig, roles ...string) echo.MiddlewareFunc {
	if len(roles) == 0 {
		roles = []string{jwtpkg.RoleDriver}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if !hasRole(roles, claims.Role) {
				return utils.ForbiddenResponse(c, "Role not allowed")
			}

			c.Set(DriverIDKey, claims.DriverID)
			c.Set(RoleKey, claims.Role)
			c.Set("user_id", claims.DriverID)
			return next(c)
		}
	}
}

// DriverID returns the authenticated driver, or "" outside JWTAuthMiddleware
func DriverID(c echo.Context) string {
	id, _ := c.Get(DriverIDKey).(string)
	return id
}

func hasRole(allowed []string, role string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
