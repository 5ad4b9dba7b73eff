package main

import (
	"log"

	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/config"
	"github.com/ayumu-dev/regi-api/internal/infrastructure/database"
	"github.com/ayumu-dev/regi-api/internal/infrastructure/repository"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/handler"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/routes"
	"github.com/ayumu-dev/regi-api/pkg/printer"
	"github.com/ayumu-dev/regi-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(productRepo)
	dashboardService := service.NewDashboardService(productRepo, txnRepo, analyticsRepo)
	reportStream := service.NewReportStream(dashboardService)
	checkoutService := service.NewCheckoutService(cartService, txnRepo, productRepo, reportStream)
	historyService := service.NewHistoryService(txnRepo)
	orderService := service.NewOrderService(orderRepo, reportStream)
	reportService := service.NewReportService(analyticsRepo, cfg.Finance)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, historyService, cfg.Shop, cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Product:     handler.NewProductHandler(catalogService),
		Cart:        handler.NewCartHandler(cartService),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Transaction: handler.NewTransactionHandler(historyService),
		Order:       handler.NewOrderHandler(orderService),
		Report:      handler.NewReportHandler(reportService),
		Dashboard:   handler.NewDashboardHandler(dashboardService, reportStream),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
