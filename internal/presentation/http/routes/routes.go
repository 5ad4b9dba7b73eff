package routes

import (
	"time"

	"github.com/ayumu-dev/regi-api/internal/config"
	domainRepo "github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/handler"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/middleware"
	"github.com/ayumu-dev/regi-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Cart        *handler.CartHandler
	Checkout    *handler.CheckoutHandler
	Transaction *handler.TransactionHandler
	Order       *handler.OrderHandler
	Report      *handler.ReportHandler
	Dashboard   *handler.DashboardHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// Catalog reads are public so the storefront can browse without a token
	v1.GET("/products", h.Product.List)
	v1.GET("/products/categories", h.Product.Categories)
	v1.GET("/products/:id", h.Product.Get)

	// Online orders come in anonymously from the storefront
	v1.POST("/orders", h.Order.Create)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.POST("/users", middleware.RequireRole("admin"), h.Auth.CreateUser)

	// Catalog mutations
	protected.POST("/products", h.Product.Create)
	protected.PATCH("/products/:id", h.Product.Update)
	protected.DELETE("/products/:id", h.Product.Delete)

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/lines", h.Cart.AddLine)
		cart.PATCH("/lines", h.Cart.ChangeQuantity)
		cart.DELETE("/lines/:productId", h.Cart.RemoveLine)
		cart.DELETE("", h.Cart.Clear)
	}

	// Checkout, with idempotency-key replay on the commit
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	protected.POST("/checkout", idempotency, h.Checkout.Checkout)
	protected.GET("/checkout/recent", h.Checkout.Recent)

	// Transaction history
	protected.GET("/transactions", h.Transaction.List)
	protected.GET("/transactions/:id", h.Transaction.Get)
	protected.GET("/transactions/:id/receipt", h.Printer.Receipt)
	protected.POST("/transactions/:id/print", h.Printer.Print)

	// Orders (back office)
	protected.GET("/orders", h.Order.List)
	protected.GET("/orders/:id", h.Order.Get)
	protected.PATCH("/orders/:id/status", h.Order.UpdateStatus)

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/monthly/series", h.Report.Series)
		reports.GET("/financial", h.Report.Financial)
	}

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)
	protected.GET("/dashboard/stream", h.Dashboard.Stream)

	// Printer
	protected.GET("/printer/status", h.Printer.Status)
	protected.POST("/printer/test", h.Printer.TestPrint)
}
