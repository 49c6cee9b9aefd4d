package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/csaassociates/ca-admin-api/internal/application/analytics"
	"github.com/csaassociates/ca-admin-api/internal/application/auth"
	"github.com/csaassociates/ca-admin-api/internal/application/billing"
	"github.com/csaassociates/ca-admin-api/internal/application/usecase"
	"github.com/csaassociates/ca-admin-api/internal/infrastructure/export"
	"github.com/csaassociates/ca-admin-api/internal/infrastructure/memstore"
	httpRouter "github.com/csaassociates/ca-admin-api/internal/interfaces/http"
	"github.com/csaassociates/ca-admin-api/pkg/config"
	"github.com/csaassociates/ca-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	stores := memstore.NewStores(time.Now())
	if cfg.App.SeedDemo {
		if err := memstore.SeedDemo(stores); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().Msg("demo fixtures loaded")
	}

	settingsUC := usecase.NewSettingsUseCase(stores.Settings, nil)
	customerUC := usecase.NewCustomerUseCase(stores.Customers, stores.Ledgers, stores.Quotations, stores.Invoices)
	serviceUC := usecase.NewServiceUseCase(stores.Services)
	quotationUC := billing.NewQuotationUseCase(
		stores.Quotations, stores.Customers, stores.Services,
		stores.Invoices, stores.Ledgers, settingsUC, nil,
	)
	invoiceUC := billing.NewInvoiceUseCase(
		stores.Invoices, stores.Customers, stores.Payments,
		stores.Ledgers, settingsUC, nil,
	)
	ledgerUC := usecase.NewLedgerUseCase(
		stores.Ledgers, stores.Customers, stores.Invoices,
		stores.Payments, export.NewLedgerExport(),
	)
	dashboardUC := appanalytics.NewDashboardUseCase(stores.Customers, stores.Invoices, stores.Ledgers, nil)
	authUC := auth.NewAuthUseCase(stores.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CA Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		ServiceUC:   serviceUC,
		QuotationUC: quotationUC,
		InvoiceUC:   invoiceUC,
		LedgerUC:    ledgerUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
