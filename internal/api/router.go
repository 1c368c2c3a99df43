package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/verihub/company-registry/internal/api/handler"
	"github.com/verihub/company-registry/internal/api/middleware"
	"github.com/verihub/company-registry/internal/core/ports"
	"github.com/verihub/company-registry/internal/core/service"
	"github.com/verihub/company-registry/internal/infrastructure/db/postgres"
	redisdb "github.com/verihub/company-registry/internal/infrastructure/db/redis"
	"github.com/verihub/company-registry/internal/token"
)

// RouterDeps carries the process-wide singletons the router wires together.
// All of them are initialized once at startup and read-only afterwards.
type RouterDeps struct {
	DB         *sql.DB
	Redis      *redis.Client // nil disables revocation
	Tokens     *token.Service
	Assertions ports.AssertionVerifier
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("company_registry_http"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(deps.DB)
	companyRepo := postgres.NewCompanyRepository(deps.DB)

	var revocations ports.RevocationList
	if deps.Redis != nil {
		revocations = redisdb.NewDenylist(deps.Redis)
	}

	authService := service.NewAuthService(userRepo, deps.Assertions, deps.Tokens, revocations)
	companyService := service.NewCompanyService(companyRepo)
	verifier := service.NewIdentityVerifier(deps.Tokens, userRepo, revocations)

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	dashboardHandler := handler.NewDashboardHandler()

	sanitize := middleware.SanitizeJSON()
	protect := middleware.Auth(verifier)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register, sanitize, middleware.ValidateBody(handler.RegistrationRules))
	auth.POST("/login", authHandler.Login, sanitize, middleware.ValidateBody(handler.LoginRules))
	auth.POST("/logout", authHandler.Logout, protect)
	auth.PUT("/profile", authHandler.UpdateProfile, sanitize, middleware.ValidateBody(handler.ProfileRules), protect)

	// --- Dashboard ---
	e.GET("/dashboard", dashboardHandler.Get, protect)

	// --- Company profile routes ---
	company := e.Group("/company")
	company.POST("/register", companyHandler.Create, sanitize, middleware.ValidateBody(handler.CompanyRules), protect)
	company.GET("/profiles", companyHandler.List, protect)
	company.PUT("/profile/:id", companyHandler.Update, sanitize, middleware.ValidateBody(handler.CompanyRules), protect)
	company.DELETE("/profile/:id", companyHandler.Delete, protect)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
