package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.Session, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.Session, error)
	logoutFn   func(ctx context.Context, token string) error
	authFn     func(ctx context.Context, token string) (*domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	return s.authFn(ctx, token)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterCustomer_Success(t *testing.T) {
	e := newEcho()
	dob := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.Session, error) {
			if in.Kind != domain.KindCustomer {
				t.Fatalf("expected customer kind, got %s", in.Kind)
			}
			if in.DateOfBirth == nil || !in.DateOfBirth.Equal(dob) {
				t.Fatalf("date of birth not parsed: %v", in.DateOfBirth)
			}
			return &ports.Session{
				Token: "tok_1",
				Account: &domain.Account{
					ID:          "acc_1",
					Email:       in.Email,
					Username:    in.Username,
					Kind:        domain.KindCustomer,
					DateOfBirth: in.DateOfBirth,
					CreatedAt:   time.Now().UTC(),
				},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/v1/auth/register/customer",
		`{"email":"alice@example.com","username":"alice","date_of_birth":"1990-01-01","password":"sup3rsecret","password_confirm":"sup3rsecret"}`)
	if err := h.RegisterCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok_1" {
		t.Fatalf("missing token in response: %v", resp)
	}
	account, ok := resp["account"].(map[string]any)
	if !ok {
		t.Fatalf("missing account in response: %v", resp)
	}
	if account["date_of_birth"] != "1990-01-01" {
		t.Fatalf("customer view must carry date_of_birth: %v", account)
	}
	if _, present := account["field_of_work"]; present {
		t.Fatalf("customer view must not carry field_of_work: %v", account)
	}
}

func TestAuthHandler_RegisterCompany_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.Session, error) {
			if in.Kind != domain.KindCompany || in.FieldOfWork != "Plumbing" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.Session{
				Token: "tok_2",
				Account: &domain.Account{
					ID:          "acc_2",
					Email:       in.Email,
					Username:    in.Username,
					Kind:        domain.KindCompany,
					FieldOfWork: in.FieldOfWork,
					CreatedAt:   time.Now().UTC(),
				},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/v1/auth/register/company",
		`{"email":"acme@example.com","username":"acme","field_of_work":"Plumbing","password":"sup3rsecret","password_confirm":"sup3rsecret"}`)
	if err := h.RegisterCompany(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	account, ok := resp["account"].(map[string]any)
	if !ok {
		t.Fatalf("missing account in response: %v", resp)
	}
	if account["field_of_work"] != "Plumbing" {
		t.Fatalf("company view must carry field_of_work: %v", account)
	}
	if _, present := account["date_of_birth"]; present {
		t.Fatalf("company view must not carry date_of_birth: %v", account)
	}
}

func TestAuthHandler_RegisterCustomer_BadDate(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.Session, error) {
			t.Fatalf("service must not be called on a malformed date")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := postJSON(e, "/v1/auth/register/customer",
		`{"email":"alice@example.com","username":"alice","date_of_birth":"01/01/1990","password":"sup3rsecret","password_confirm":"sup3rsecret"}`)
	err := h.RegisterCustomer(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !verr.HasReason(domain.ReasonInvalidField) {
		t.Fatalf("expected invalid date_of_birth, got %v", verr)
	}
}

func TestAuthHandler_RegisterCustomer_MissingUsernameFieldKeyed(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.Session, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := postJSON(e, "/v1/auth/register/customer",
		`{"email":"alice@example.com","date_of_birth":"1990-01-01","password":"sup3rsecret","password_confirm":"sup3rsecret"}`)
	err := h.RegisterCustomer(c)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected field-keyed validation error, got %v", err)
	}
	found := false
	for _, f := range verr.Fields {
		if f.Field == "username" && f.Reason == domain.ReasonMissingField {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected username entry, got %v", verr.Fields)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.Session, error) {
			if email != "alice@example.com" || password != "sup3rsecret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			dob := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
			return &ports.Session{
				Token: "tok_3",
				Account: &domain.Account{
					ID:          "acc_1",
					Email:       email,
					Username:    "alice",
					Kind:        domain.KindCustomer,
					DateOfBirth: &dob,
				},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"alice@example.com","password":"sup3rsecret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok_3" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassedThrough(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.Session, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := postJSON(e, "/v1/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	calls := 0
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, token string) error {
			calls++
			if token != "tok_1" {
				t.Fatalf("unexpected token: %s", token)
			}
			if calls > 1 {
				return domain.ErrTokenNotFound
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/v1/auth/logout", "")
	c.Request().Header.Set("Authorization", "Bearer tok_1")
	if err := h.Logout(c); err != nil {
		t.Fatalf("first logout failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c2, _ := postJSON(e, "/v1/auth/logout", "")
	c2.Request().Header.Set("Authorization", "Bearer tok_1")
	if err := h.Logout(c2); err != domain.ErrTokenNotFound {
		t.Fatalf("second logout: expected ErrTokenNotFound, got %v", err)
	}
}

func TestAuthHandler_Logout_MissingHeader(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, _ := postJSON(e, "/v1/auth/logout", "")
	err := h.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
