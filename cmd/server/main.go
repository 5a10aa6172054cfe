package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/novelpj/novelx/internal/config"
	"github.com/novelpj/novelx/internal/database"
	"github.com/novelpj/novelx/internal/handlers"
	"github.com/novelpj/novelx/internal/middleware"
	"github.com/novelpj/novelx/internal/types"

	_ "github.com/novelpj/novelx/docs/api" // Swagger docs
)

// @title novelx API
// @version 1.0.0
// @description Serialized-fiction reading platform backend: novel catalog, paywalled chapter reader, coin wallet and chapter unlock purchases, admin publishing studio.

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database (catalog pool)
	catalogDB, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to catalog database: %v", err)
	}
	defer database.Close(catalogDB)

	// Connect to database (ledger pool)
	ledgerDB, err := database.ConnectLedger(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to ledger database: %v", err)
	}
	defer database.Close(ledgerDB)

	// Run auto-migrations unless the schema is initdb-managed. In the
	// privilege-split deployment neither account holds DDL rights, so
	// migrations must be off there; the init SQL owns the schema.
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(ledgerDB); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("Auto-migration disabled, expecting an initdb-managed schema")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("novelx")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	catalogHandler := &handlers.CatalogHandler{DB: catalogDB}
	readerHandler := &handlers.ReaderHandler{CatalogDB: catalogDB, LedgerDB: ledgerDB}
	purchaseHandler := &handlers.PurchaseHandler{LedgerDB: ledgerDB}
	profileHandler := &handlers.ProfileHandler{LedgerDB: ledgerDB}
	studioHandler := &handlers.StudioHandler{DB: ledgerDB}
	authHandler := &handlers.AuthHandler{Cfg: cfg}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: catalogDB}

	// Health
	api.Get("/health", healthHandler.GetHealth)

	// Auth surface
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/session", middleware.AuthOptional(cfg, ledgerDB), authHandler.Session)

	// Public catalog routes
	api.Get("/novels", catalogHandler.ListNovels)
	api.Get("/novels/:id", catalogHandler.GetNovel)

	// Reader route: anonymous allowed, access decided per chapter
	api.Get("/novels/:id/chapters/:number", middleware.AuthOptional(cfg, ledgerDB), readerHandler.GetChapter)

	// Purchases and profile (authenticated)
	api.Post("/chapters/:id/purchase", middleware.AuthUser(cfg, ledgerDB), purchaseHandler.PurchaseChapter)
	api.Get("/profile", middleware.AuthUser(cfg, ledgerDB), profileHandler.GetProfile)
	api.Get("/profile/history", middleware.AuthUser(cfg, ledgerDB), profileHandler.GetHistory)
	api.Post("/profile/topup", middleware.AuthUser(cfg, ledgerDB), profileHandler.TopUp)

	// Studio routes (admin capability required)
	api.Post("/studio/novels", middleware.AuthAdmin(cfg, ledgerDB), studioHandler.CreateNovel)
	api.Post("/studio/chapters", middleware.AuthAdmin(cfg, ledgerDB), studioHandler.PublishChapters)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Authorizer is initialized lazily on the first authenticated request
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if strings.HasPrefix(errorType, "auth.") {
		// Log the session detail, send the client a generic rejection
		log.Printf("auth error: %s", message)
		message = "authentication failed"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
