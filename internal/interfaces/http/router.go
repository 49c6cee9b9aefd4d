package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/analytics"
	"github.com/csaassociates/ca-admin-api/internal/application/auth"
	"github.com/csaassociates/ca-admin-api/internal/application/billing"
	"github.com/csaassociates/ca-admin-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	ServiceUC   *usecase.ServiceUseCase
	QuotationUC *billing.QuotationUseCase
	InvoiceUC   *billing.InvoiceUseCase
	LedgerUC    *usecase.LedgerUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Put("/:id", serviceHandler.Update)
	services.Patch("/:id/toggle", serviceHandler.ToggleStatus)
	services.Delete("/:id", serviceHandler.Delete)

	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Post("/:id/send", quotationHandler.Send)
	quotations.Post("/:id/accept", quotationHandler.Accept)
	quotations.Post("/:id/reject", quotationHandler.Reject)
	quotations.Post("/:id/convert", quotationHandler.Convert)
	quotations.Delete("/:id", quotationHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	// static segment before the :id routes
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/payments", invoiceHandler.RecordPayment)
	invoices.Get("/:id/payments", invoiceHandler.Payments)
	invoices.Delete("/:id", invoiceHandler.Delete)

	ledgers := protected.Group("/ledgers")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgers.Get("/", ledgerHandler.List)
	ledgers.Get("/stats", ledgerHandler.Stats)
	ledgers.Get("/export", ledgerHandler.Export)
	ledgers.Get("/:customerID/statement", ledgerHandler.Statement)

	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/firm", settingsHandler.UpdateFirm)
	settings.Put("/invoice", settingsHandler.UpdateInvoiceSettings)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
