package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/handylink/marketplace-api/internal/api/metrics"
	"github.com/handylink/marketplace-api/internal/api/middleware"
	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

// AuthHandler handles registration, login, logout and profile lookup.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerCustomerRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Username        string `json:"username"         validate:"required"`
	DateOfBirth     string `json:"date_of_birth"    validate:"required"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

type registerCompanyRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Username        string `json:"username"         validate:"required"`
	FieldOfWork     string `json:"field_of_work"    validate:"required"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token   string `json:"token"`
	Account any    `json:"account"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// RegisterCustomer creates a customer account and starts its session.
//
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Customer registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/auth/register/customer [post]
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return domain.NewValidationError("date_of_birth", domain.ReasonInvalidField, "date of birth must be YYYY-MM-DD")
	}

	session, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Kind:            domain.KindCustomer,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		DateOfBirth:     &dob,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.KindCustomer)).Inc()
	return c.JSON(http.StatusCreated, sessionResponse{
		Token:   session.Token,
		Account: accountView(session.Account),
	})
}

// RegisterCompany creates a company account and starts its session.
//
// @Summary      Register a company account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerCompanyRequest  true  "Company registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/auth/register/company [post]
func (h *AuthHandler) RegisterCompany(c echo.Context) error {
	var req registerCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Kind:            domain.KindCompany,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FieldOfWork:     req.FieldOfWork,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.KindCompany)).Inc()
	return c.JSON(http.StatusCreated, sessionResponse{
		Token:   session.Token,
		Account: accountView(session.Account),
	})
}

// Login authenticates an account and returns its session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case domain.ErrAccountDisabled:
			metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{
		Token:   session.Token,
		Account: accountView(session.Account),
	})
}

// Logout revokes the caller's session token. A second logout with the same
// token returns 404 ("already logged out").
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me returns the account owning the bearer token.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"account": accountView(account)})
}
