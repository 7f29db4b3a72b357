package middleware

import (
	"github.com/labstack/echo/v4"
	httppkg "github.com/piresc/kurir/internal/pkg/http"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// CallerKey is the echo context key holding the authenticated internal caller
const CallerKey = "caller"

// Internal callers of the dispatch API
const (
	CallerOrdering   = "ordering"
	CallerOnboarding = "onboarding"
	CallerAdmin      = "admin"
)

// APIKeyHashes maps caller names to the bcrypt hash of their key
func APIKeyHashes(cfg models.APIKeyConfig) map[string]string {
	return map[string]string{
		CallerOrdering:   cfg.OrderingHash,
		CallerOnboarding: cfg.OnboardingHash,
		CallerAdmin:      cfg.AdminHash,
	}
}

// ValidateAPIKey admits requests whose X-API-Key matches the hash of one of
// the allowed callers
func ValidateAPIKey(hashes map[string]string, allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(httppkg.APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, caller := range allowedCallers {
				hash := hashes[caller]
				if hash == "" {
					continue
				}
				if bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)) == nil {
					c.Set(CallerKey, caller)
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
