package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/shopfront/admin-api/internal/api/handler"
	"github.com/shopfront/admin-api/internal/api/middleware"
	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/ports"
	"github.com/shopfront/admin-api/internal/core/service"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Log zerolog.Logger

	Tokens   middleware.SessionTokens
	Auth     ports.AuthService
	Products ports.ProductService
	Uploads  ports.UploadService
	Users    handler.UserCounter

	// Limiter throttles /auth/login. Nil disables throttling.
	Limiter middleware.AttemptLimiter

	DatabaseCheck handler.Check
	ExtraChecks   map[string]handler.Check

	Cookie         middleware.CookieOptions
	UploadDir      string
	UploadMaxBytes int64

	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(metricsMiddleware(deps.Registry))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	productHandler := handler.NewProductHandler(deps.Products)
	uploadHandler := handler.NewUploadHandler(deps.Uploads)
	shopHandler := handler.NewShopHandler(deps.Products)
	dashboardHandler := handler.NewDashboardHandler(deps.Products, deps.Users)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DatabaseCheck, deps.ExtraChecks, deps.Log)

	requireSession := middleware.Session(deps.Tokens, deps.Cookie, deps.Log)
	gate := middleware.Gate(deps.Tokens, deps.Cookie, deps.Log)

	// --- Auth ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, middleware.LoginThrottle(deps.Limiter, deps.Log))
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session, requireSession)

	// --- Catalog: reads are public, writes need a session ---
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, requireSession)
	products.PUT("/:id", productHandler.Update, requireSession)
	products.DELETE("/:id", productHandler.Delete, requireSession)

	// --- Uploads ---
	e.POST("/upload", uploadHandler.Upload, requireSession, middleware.UploadLimit(uploadBodyLimit(deps.UploadMaxBytes), service.ErrImageTooLarge))
	e.Static("/uploads", deps.UploadDir)

	// --- Storefront ---
	e.GET("/shop", shopHandler.List)
	e.GET("/shop/:id", shopHandler.Detail)

	// --- Gated pages ---
	dashboard := e.Group("/dashboard", gate)
	dashboard.GET("", dashboardHandler.Overview)
	dashboard.GET("/admin", dashboardHandler.AdminStats)

	admin := e.Group("/admin", gate)
	admin.GET("", dashboardHandler.AdminStats)

	adminAPI := e.Group("/api/admin", requireSession, middleware.RBAC(domain.RoleAdmin))
	adminAPI.GET("/stats", dashboardHandler.AdminStats)

	// --- Health checks (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/test-db", healthDepsHandler.TestDB)

	// --- Ops ---
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func metricsMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

// uploadBodyLimit rejects grossly oversized bodies before they are parsed.
// Files just over the cap still reach the upload service, which applies the
// exact cap.
func uploadBodyLimit(maxBytes int64) string {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return fmt.Sprintf("%dK", (2*maxBytes)>>10)
}
