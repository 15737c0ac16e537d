package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handylink/marketplace-api/internal/api/middleware"
	"github.com/handylink/marketplace-api/internal/core/domain"
)

// ctxAccount extracts the account injected by the Auth middleware and
// fast-fails before any service call: a missing account means the
// middleware did not run or the token did not resolve.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.AccountContextKey).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return account, nil
}
