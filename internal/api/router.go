package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/handylink/marketplace-api/docs"
	"github.com/handylink/marketplace-api/internal/api/handler"
	"github.com/handylink/marketplace-api/internal/api/middleware"
	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
	"github.com/handylink/marketplace-api/internal/core/service"
	mongodb "github.com/handylink/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/handylink/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	audit ports.AuditRecorder,
	bcryptCost int,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	listingRepo := mongodb.NewListingRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(accountRepo, sessionStore, service.NewCredentials(bcryptCost), audit, log)
	listingService := service.NewListingService(listingRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register/customer", authHandler.RegisterCustomer)
	v1.POST("/auth/register/company", authHandler.RegisterCompany)
	v1.POST("/auth/login", authHandler.Login)
	// Logout reads the bearer token itself so a revoked token reports
	// "already logged out" instead of failing authentication.
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me, authRequired)

	// --- Listing routes ---
	v1.GET("/services", listingHandler.List)
	v1.POST("/services", listingHandler.Create, authRequired, middleware.RequireKind(domain.KindCompany))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
