package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/utmhub/conversion-relay/internal/api/handler"
	"github.com/utmhub/conversion-relay/internal/api/middleware"
	"github.com/utmhub/conversion-relay/internal/core/ports"
	"github.com/utmhub/conversion-relay/internal/core/service"
	"github.com/utmhub/conversion-relay/internal/infrastructure/db/postgres"
	"github.com/utmhub/conversion-relay/internal/infrastructure/db/redis"
	"github.com/utmhub/conversion-relay/internal/infrastructure/http/handlers"
)

// Deps collects the process-wide resources the router wires into every
// component. It is built once at startup; no component reaches for globals.
type Deps struct {
	Pool      *pgxpool.Pool
	Redis     *goredis.Client
	Upstream  ports.UpstreamClient
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("relay"))

	// --- Repositories ---
	authRepo := postgres.NewAuthRepository(deps.Pool)
	integrationRepo := postgres.NewIntegrationRepository(deps.Pool)
	eventRepo := postgres.NewEventRepository(deps.Pool)
	integrationCache := redis.NewIntegrationCache(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(authRepo, deps.JWTSecret, deps.TokenTTL)
	integrationService := service.NewIntegrationService(integrationRepo, deps.Log)
	eventService := service.NewEventService(eventRepo, integrationRepo, deps.Log)
	webhookService := service.NewWebhookService(integrationRepo, eventService, deps.Upstream, integrationCache, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	integrationHandler := handler.NewIntegrationHandler(integrationService)
	eventHandler := handler.NewEventHandler(eventService)
	webhookHandler := handler.NewWebhookHandler(webhookService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Webhook ingress (authenticated by per-integration secret, not session) ---
	e.POST("/hook/:id", webhookHandler.Receive)

	// --- Management API (session required) ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))
	v1.POST("/integrations", integrationHandler.Create)
	v1.GET("/integrations", integrationHandler.List)
	v1.GET("/integrations/:id/events", eventHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Pool, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
