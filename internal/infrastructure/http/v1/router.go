// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"pharmapos/internal/domain/auth"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/invoice"
	"pharmapos/internal/domain/ledger"
	"pharmapos/internal/domain/purchases"
	"pharmapos/internal/domain/reporting"
	"pharmapos/internal/domain/sales"
	"pharmapos/internal/infrastructure/http/v1/handlers"
	"pharmapos/internal/infrastructure/http/v1/middleware"
	"pharmapos/internal/infrastructure/storage/postgres"
)

// RouterConfig holds everything the router wires together.
type RouterConfig struct {
	Pool *postgres.Pool

	// TokenValidator for bearer token validation
	TokenValidator middleware.TokenValidator

	AuthService      *auth.Service
	InventoryService *inventory.Service
	PurchaseService  *purchases.Service
	SaleService      *sales.Service
	ReportingService *reporting.Service
	Recorder         *ledger.Service
	InvoiceStore     *invoice.Store
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	inventoryHandler := handlers.NewInventoryHandler(base, cfg.InventoryService)
	purchasesHandler := handlers.NewPurchasesHandler(base, cfg.PurchaseService, cfg.Recorder)
	salesHandler := handlers.NewSalesHandler(base, cfg.SaleService)
	reportsHandler := handlers.NewReportsHandler(base, cfg.ReportingService)
	invoicesHandler := handlers.NewInvoicesHandler(base, cfg.InvoiceStore)

	api := router.Group("/api/v1")
	{
		// Login is the only unauthenticated API endpoint.
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.TokenValidator))
		{
			protected.GET("/dashboard", reportsHandler.Dashboard)

			protected.GET("/inventory", inventoryHandler.List)
			protected.GET("/inventory/:id", inventoryHandler.Get)
			protected.POST("/inventory", inventoryHandler.Add)

			protected.POST("/purchases", purchasesHandler.Receive)
			protected.GET("/purchases", purchasesHandler.List)

			protected.POST("/sales", salesHandler.Commit)
			protected.GET("/sales/recent", reportsHandler.RecentSales)

			protected.GET("/reports/expiry", reportsHandler.ExpiryTracker)

			protected.GET("/invoices/:number", invoicesHandler.Download)

			protected.GET("/users", authHandler.ListUsers)
			protected.POST("/users", authHandler.AddUser)
			protected.DELETE("/users/:username", authHandler.DeleteUser)
		}
	}

	return router
}
