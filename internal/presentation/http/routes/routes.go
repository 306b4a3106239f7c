package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/config"
	"github.com/simplebit/merchant-api/internal/presentation/http/handler"
	"github.com/simplebit/merchant-api/internal/presentation/http/middleware"
	"github.com/simplebit/merchant-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Invoice     *handler.InvoiceHandler
	Payment     *handler.PaymentHandler
	Item        *handler.ItemHandler
	Payout      *handler.PayoutHandler
	Transaction *handler.TransactionHandler
	Profile     *handler.ProfileHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

	// Per-client rate limiter shared by every API route
	limiterCfg := middleware.DefaultRateLimiterConfig()
	if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
		limiterCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
		limiterCfg.BurstSize = deps.Cfg.RateLimit.Requests
	}
	rateLimiter := middleware.NewClientRateLimiter(limiterCfg)

	// API routes under the configurable base path
	base := deps.Cfg.App.BasePath
	if base == "" {
		base = "/api/v1"
	}
	v1 := router.Group(base)
	v1.Use(rateLimiter.Middleware())
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerProtectedRoutes(protected, h)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "message": "Route not found"})
	})

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
	}

	// Payer-facing payment flow, reached from the invoice link
	v1.GET("/assets", h.Payment.ListAssets)
	v1.GET("/pay/:number", h.Payment.GetPublicInvoice)
	v1.POST("/pay/:number", h.Payment.Initiate)
	v1.GET("/payments/:reference", h.Payment.Get)
	v1.POST("/payments/:reference/confirm", h.Payment.Confirm)
}

func registerProtectedRoutes(g *gin.RouterGroup, h *Handlers) {
	g.POST("/auth/change-password", h.Auth.ChangePassword)

	g.GET("/dashboard", h.Dashboard.Get)

	invoices := g.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.POST("/preview", h.Invoice.Preview)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/cancel", h.Invoice.Cancel)
		invoices.POST("/:id/complete", h.Invoice.MarkPaid)
	}

	items := g.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}

	g.GET("/transactions", h.Transaction.List)

	payouts := g.Group("/payouts")
	{
		payouts.GET("", h.Payout.List)
		payouts.POST("", h.Payout.Request)
	}

	profile := g.Group("/profile")
	{
		profile.GET("", h.Profile.Get)
		profile.PUT("", h.Profile.Update)
		profile.GET("/kyc", h.Profile.KYC)
		profile.GET("/bank-accounts", h.Profile.ListBankAccounts)
		profile.POST("/bank-accounts", h.Profile.AddBankAccount)
		profile.DELETE("/bank-accounts/:id", h.Profile.RemoveBankAccount)
	}
}
