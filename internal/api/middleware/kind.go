package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// RequireKind restricts a route to accounts of the given kinds. It expects
// Auth to have run first; a missing account rejects with 401.
func RequireKind(kinds ...domain.AccountKind) echo.MiddlewareFunc {
	allowed := make(map[domain.AccountKind]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := c.Get(AccountContextKey).(*domain.Account)
			if account == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[account.Kind]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
