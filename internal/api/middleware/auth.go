package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// accountContextKey is the echo context key the resolved account is stored
// under. Handlers read it back through handler.AccountFromContext.
const AccountContextKey = "account"

// Authenticator resolves a bearer token to its account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
}

// Auth extracts the opaque bearer token, resolves it through the session
// issuer and injects the owning account into the request context. Tokens
// carry no claims; resolution is always a store lookup.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				return err
			}

			account, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if err == domain.ErrAccountDisabled {
					return echo.NewHTTPError(http.StatusForbidden, "account disabled")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(AccountContextKey, account)

			return next(c)
		}
	}
}

// BearerToken pulls the token out of the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
