// Package main is the entry point for the pharmacy POS API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pharmapos/internal/config"
	"pharmapos/internal/domain/auth"
	"pharmapos/internal/domain/inventory"
	"pharmapos/internal/domain/invoice"
	"pharmapos/internal/domain/ledger"
	"pharmapos/internal/domain/purchases"
	"pharmapos/internal/domain/reporting"
	"pharmapos/internal/domain/sales"
	v1 "pharmapos/internal/infrastructure/http/v1"
	"pharmapos/internal/infrastructure/storage/postgres"
	"pharmapos/pkg/logger"
	"pharmapos/pkg/numerator"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.Env == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting pharmapos server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.ConnectionString())
	poolCfg.MaxConns = cfg.DB.MaxConns
	poolCfg.MinConns = cfg.DB.MinConns

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}

	// --- Storage ---
	txManager := postgres.NewTxManager(pool)
	inventoryRepo := postgres.NewInventoryRepo(txManager)
	ledgerRepo := postgres.NewLedgerRepo(txManager)
	userRepo := postgres.NewUserRepo(txManager)

	// --- JWT ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWT.Secret)
	jwtConfig.AccessTokenTTL = cfg.JWT.TokenTTL
	jwtService := auth.NewJWTService(jwtConfig)

	// --- Domain services ---
	authService := auth.NewService(userRepo, jwtService)
	inventoryService := inventory.NewService(inventoryRepo, txManager)
	recorder := ledger.NewService(ledgerRepo)
	numbers := numerator.New(pool)
	invoiceStore := invoice.NewStore(cfg.Invoice.OutputDir)

	purchaseService := purchases.NewService(inventoryService, recorder, txManager)
	saleService := sales.NewService(inventoryService, recorder, numbers, invoiceStore, txManager)
	reportingService := reporting.NewService(inventoryRepo, ledgerRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool,
		TokenValidator:   jwtService,
		AuthService:      authService,
		InventoryService: inventoryService,
		PurchaseService:  purchaseService,
		SaleService:      saleService,
		ReportingService: reportingService,
		Recorder:         recorder,
		InvoiceStore:     invoiceStore,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
