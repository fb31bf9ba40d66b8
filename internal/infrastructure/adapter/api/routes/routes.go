package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Webhook  *handler.WebhookHandler
	Provider *handler.ProviderHandler
	Wallet   *handler.WalletHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API.
// The webhook authenticates by signature; administrative routes go through auth.
func SetupRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)
	router.POST("/webhook", h.Webhook.HandleWebhook)

	admin := router.Group("/", auth)
	{
		admin.POST("/verify-account", h.Provider.VerifyAccount)
		admin.POST("/create-virtual-account", h.Provider.CreateVirtualAccount)
		admin.POST("/transfer", h.Provider.Transfer)

		users := admin.Group("/users")
		users.POST("", h.Wallet.RegisterUser)
		users.GET("/:userId/balance", h.Wallet.GetBalance)
		users.GET("/:userId/transactions", h.Wallet.ListTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}
