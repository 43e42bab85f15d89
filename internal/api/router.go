package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/animalprint/petstyle-console/internal/api/handler"
	"github.com/animalprint/petstyle-console/internal/api/middleware"
	"github.com/animalprint/petstyle-console/internal/core/service"
	"github.com/animalprint/petstyle-console/internal/infrastructure/config"
	mongostore "github.com/animalprint/petstyle-console/internal/infrastructure/db/mongo"
	redisstore "github.com/animalprint/petstyle-console/internal/infrastructure/db/redis"
	"github.com/animalprint/petstyle-console/internal/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("petstyle"))

	// --- Dependencies ---
	credentials := redisstore.NewCredentialStore(rdb, cfg.Session.TTL)
	audit := mongostore.NewAuthAuditRepository(db)

	// The token client goes out without the auth transport: issuance and
	// refresh must never themselves trigger a refresh.
	tokens := upstream.NewTokenClient(upstream.NewClient(cfg.UpstreamBaseURL, nil, log))
	gateway := upstream.NewClient(cfg.UpstreamBaseURL, upstream.NewAuthTransport(nil, credentials, tokens, log), log)

	sessions := service.NewSessionService(credentials, tokens, audit, log)

	authHandler := handler.NewAuthHandler(sessions, audit, cfg.Session)
	customerHandler := handler.NewCustomerHandler(upstream.NewCustomerClient(gateway))
	employeeHandler := handler.NewEmployeeHandler(upstream.NewEmployeeClient(gateway))
	productHandler := handler.NewProductHandler(upstream.NewProductClient(gateway))
	catalogHandler := handler.NewCatalogHandler(upstream.NewCatalogClient(gateway))
	saleHandler := handler.NewSaleHandler(upstream.NewSaleClient(gateway))
	movementHandler := handler.NewMovementHandler(upstream.NewMovementClient(gateway))
	reportHandler := handler.NewReportHandler(upstream.NewReportClient(gateway))

	// --- Session entry points (reachable without a session) ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/session", authHandler.Session)

	// --- Protected console tree ---
	guard := middleware.Session(cfg.Session.CookieName, sessions)
	g := e.Group("/api", guard)

	g.GET("/auth/activity", authHandler.Activity, middleware.AdminOnly())

	g.GET("/customers", customerHandler.List)
	g.POST("/customers", customerHandler.Create)
	g.GET("/customers/:id", customerHandler.Get)
	g.PUT("/customers/:id", customerHandler.Update)
	g.DELETE("/customers/:id", customerHandler.Delete)

	g.GET("/employees", employeeHandler.List)
	g.POST("/employees", employeeHandler.Create)
	g.GET("/employees/me", employeeHandler.Me)
	g.GET("/employees/:id", employeeHandler.Get)
	g.PUT("/employees/:id", employeeHandler.Update)
	g.DELETE("/employees/:id", employeeHandler.Delete)

	g.GET("/products", productHandler.List)
	g.POST("/products", productHandler.Create)
	g.GET("/products/:id", productHandler.Get)
	g.PUT("/products/:id", productHandler.Update)
	g.DELETE("/products/:id", productHandler.Delete)

	g.GET("/catalog/categories", catalogHandler.Categories)
	g.GET("/catalog/collections", catalogHandler.Collections)

	g.GET("/sales", saleHandler.List)
	g.POST("/sales", saleHandler.Create)

	g.GET("/inventory/movements", movementHandler.List)
	g.POST("/inventory/movements", movementHandler.Create)

	g.GET("/reports/sales/summary", reportHandler.SalesSummary)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, db, cfg.UpstreamBaseURL)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
