package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/datalab/sample-tracker/docs"
	"github.com/datalab/sample-tracker/internal/api/handler"
	"github.com/datalab/sample-tracker/internal/api/middleware"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs from the core and the
// infrastructure.
type Dependencies struct {
	Identities ports.IdentityService
	Sessions   ports.SessionService
	Guard      ports.AccessGuard
	Watcher    ports.SessionWatcher
	Catalog    ports.LabCatalog
	Origins    *middleware.OriginIssuer
	Health     map[string]handler.PingFunc
	Log        zerolog.Logger

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "datalab",
		Registerer: registerer,
	}))

	// --- Operational endpoints (no origin, no auth) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Everything below shares the caller's origin (one session slot per browser) ---
	app := e.Group("", middleware.Origin(deps.Origins, deps.Log))

	authHandler := handler.NewAuthHandler(deps.Identities, deps.Sessions)
	app.GET(domain.LoginRoute, authHandler.LoginPage)
	app.POST("/auth/login", authHandler.Login)
	app.POST("/auth/logout", authHandler.Logout)
	app.POST("/auth/password-reset", authHandler.PasswordReset)
	app.GET("/auth/session", authHandler.Session)

	sessionHandler := handler.NewSessionHandler(deps.Watcher, requiredLevel, deps.Log)
	app.GET("/session/watch", sessionHandler.Watch)

	// --- Protected routes ---
	app.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, domain.LandingRoute)
	})

	lab := handler.NewLabHandler(deps.Catalog)
	for _, r := range protectedRoutes {
		app.Add(r.method, r.path, func(c echo.Context) error {
			return r.serve(lab, c)
		}, middleware.Guard(deps.Guard, r.level))
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
