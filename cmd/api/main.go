package main

import (
	"log"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/application/service"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/config"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/infrastructure/database"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/infrastructure/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/handler"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/routes"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/printer"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default operator accounts on first run
	if err := database.SeedDefaultUsers(db); err != nil {
		log.Printf("Warning: Failed to seed default users: %v", err)
	}

	// The shop's wall-clock timezone, used for "today" and report periods
	location, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using local time", cfg.Database.Timezone)
		location = time.Local
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
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

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

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	catalogService := service.NewCatalogService(productRepo, cfg.Billing.LowStockThreshold)
	customerService := service.NewCustomerService(customerRepo, invoiceRepo, paymentRepo, cfg.Billing.PhoneRegion)
	billingService := service.NewBillingService(ledgerRepo, invoiceRepo, paymentRepo, productRepo, customerRepo, cfg.Billing.TaxRatePercent)
	dashboardService := service.NewDashboardService(reportRepo, productRepo, location)
	reportService := service.NewReportService(reportRepo, location)
	userService := service.NewUserService(userRepo)
	receiptService := service.NewReceiptService(invoiceRepo, thermalPrinter, cfg.App.Name, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(catalogService),
		Customer:  handler.NewCustomerHandler(customerService),
		Invoice:   handler.NewInvoiceHandler(billingService, receiptService),
		Dashboard: handler.NewDashboardHandler(dashboardService, cfg.Billing.LowStockThreshold),
		Report:    handler.NewReportHandler(reportService),
		User:      handler.NewUserHandler(userService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
