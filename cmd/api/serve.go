package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/cache"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/provider"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/webhook"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/routes"
	cacheadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/gateway/paystack"
	identityadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/identity"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.connect(ctx); err != nil {
		a.logger.Error("Failed to initialize database", map[string]any{"error": err.Error()})
		return err
	}

	uow := a.db.CreateUnitOfWork()

	verifier, err := webhook.NewSignatureVerifier(a.cfg.Paystack.WebhookSecret)
	if err != nil {
		return err
	}

	ledgerService := ledger.NewLedgerService(uow, a.timeProvider, a.logger)
	resolver := account.NewResolver(uow, a.logger)
	webhookService := webhook.NewWebhookService(verifier, resolver, ledgerService, a.logger)
	walletUseCase := wallet.NewWalletUseCase(uow, a.timeProvider, a.logger)

	names, closeNames := accountNameCache(ctx, a)
	defer closeNames()

	gatewayClient := paystack.NewClient(paystack.Config{
		BaseURL:   a.cfg.Paystack.BaseURL,
		SecretKey: a.cfg.Paystack.SecretKey,
		Timeout:   a.cfg.Paystack.Timeout,
	}, a.timeProvider, a.logger)
	providerService := provider.NewProviderService(gatewayClient, names, uow, a.timeProvider, a.logger, provider.Options{
		PreferredBank: a.cfg.Paystack.PreferredBank,
		Currency:      a.cfg.Paystack.Currency,
	})

	if a.cfg.Database.SeedDefaultUsers {
		if err := migration.CreateDefaultUsers(ctx, walletUseCase, migration.DefaultUsers); err != nil {
			a.logger.Error("Failed to create default users", map[string]any{"error": err.Error()})
		}
	}

	identities := identityadapter.NewJWTProvider(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.timeProvider)

	router := gin.New()
	routes.SetupMiddlewares(router, a.logger, a.timeProvider)
	routes.SetupRoutes(router, routes.Handlers{
		Webhook:  handler.NewWebhookHandler(webhookService, a.logger),
		Provider: handler.NewProviderHandler(providerService, a.logger),
		Wallet:   handler.NewWalletHandler(walletUseCase, a.logger),
		Health:   handler.NewHealthHandler(a.db),
	}, middleware.Auth(identities, a.logger))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  a.cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			a.logger.Error("Failed to start server", map[string]any{"error": err.Error()})
			return err
		}
	case <-quit:
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}

	a.logger.Info("Server exited gracefully", nil)
	return nil
}

// accountNameCache connects Redis when configured. Redis being unreachable degrades to no caching.
func accountNameCache(ctx context.Context, a *app) (cache.AccountNameCache, func()) {
	if !a.cfg.Redis.Enabled() {
		return cacheadapter.NewNoopAccountNameCache(), func() {}
	}

	rdb, err := cacheadapter.NewRedisClient(ctx, cacheadapter.RedisConfig{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err != nil {
		a.logger.Warn("Account name cache disabled", map[string]any{"error": err.Error()})
		return cacheadapter.NewNoopAccountNameCache(), func() {}
	}

	return cacheadapter.NewRedisAccountNameCache(rdb, a.cfg.Redis.ResolveCacheTTL), func() { _ = rdb.Close() }
}
