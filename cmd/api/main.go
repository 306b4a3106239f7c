package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/config"
	"github.com/simplebit/merchant-api/internal/infrastructure/memory"
	"github.com/simplebit/merchant-api/internal/presentation/http/handler"
	"github.com/simplebit/merchant-api/internal/presentation/http/routes"
	"github.com/simplebit/merchant-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize in-memory stores
	stores := memory.NewStores()

	// Seed demo data
	if cfg.App.SeedDemoData {
		if err := stores.SeedDemo(context.Background()); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize services
	authService := service.NewAuthService(stores.Users, jwtManager)
	invoiceService := service.NewInvoiceService(stores.Invoices, stores.Items)
	paymentService := service.NewPaymentService(stores.Invoices, stores.Transactions, stores.Assets, stores.Users)
	itemService := service.NewItemService(stores.Items)
	payoutService := service.NewPayoutService(stores.Payouts, stores.BankAccounts)
	transactionService := service.NewTransactionService(stores.Transactions)
	accountService := service.NewBankAccountService(stores.BankAccounts)
	profileService := service.NewProfileService(stores.Users)
	dashboardService := service.NewDashboardService(stores.Invoices, stores.Items, stores.Transactions, stores.Payouts)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		Payment:     handler.NewPaymentHandler(paymentService),
		Item:        handler.NewItemHandler(itemService),
		Payout:      handler.NewPayoutHandler(payoutService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Profile:     handler.NewProfileHandler(profileService, accountService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
