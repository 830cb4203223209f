package routes

import (
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/config"
	domainRepo "github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/handler"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/middleware"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	User      *handler.UserHandler
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

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
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

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)
	protected.GET("/dashboard/low-stock", h.Dashboard.LowStock)

	// Products
	products := protected.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/stock", h.Product.AdjustStock)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/invoices", h.Customer.Invoices)
		customers.GET("/:id/payments", h.Customer.Payments)
		customers.GET("/:id/balance-check", h.Customer.CheckBalance)
	}

	// Invoices and payments. Creation writes money records, so both POST
	// routes demand an Idempotency-Key.
	idempotent := middleware.IdempotencyRequired(deps.IdempotencyRepo)
	invoices := protected.Group("/invoices")
	{
		invoices.POST("", idempotent, h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/pending", h.Invoice.Pending)
		invoices.GET("/number/:number", h.Invoice.GetByNumber)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/payments", idempotent, h.Invoice.RecordPayment)
		invoices.GET("/:id/payments", h.Invoice.Payments)
		invoices.POST("/:id/receipt", h.Invoice.PrintReceipt)
	}

	// Owner-only surface: revenue reports and operator management.
	owner := protected.Group("")
	owner.Use(middleware.RequireOwner())
	{
		owner.GET("/reports/revenue", h.Report.Revenue)
		owner.GET("/reports/top-products", h.Report.TopProducts)

		users := owner.Group("/users")
		{
			users.POST("", h.User.Create)
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}
	}
}
