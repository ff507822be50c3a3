package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agroadmin-api/internal/application/analytics"
	"github.com/agrocampo/agroadmin-api/internal/application/auth"
	"github.com/agrocampo/agroadmin-api/internal/application/inventory"
	"github.com/agrocampo/agroadmin-api/internal/application/reports"
	"github.com/agrocampo/agroadmin-api/internal/application/sales"
	"github.com/agrocampo/agroadmin-api/internal/application/usecase"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CompanyUC     *usecase.CompanyUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	InvoiceUC     *usecase.InvoiceUseCase
	CreateSale    *sales.CreateSaleUseCase
	CreateReturn  *sales.CreateReturnUseCase
	SalesQuery    *sales.QueryUseCase
	AuditUC       *inventory.AuditUseCase
	AlertsUC      *inventory.AlertsUseCase
	OverviewUC    *analytics.OverviewUseCase
	TurnoverUC    *analytics.TurnoverUseCase
	SalesByDateUC *analytics.SalesByDateUseCase
	PDFReportUC   *reports.PDFReportUseCase
	XLSXReportUC  *reports.XLSXTurnoverUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Companies (proveedores)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/restock", adminOnly, productHandler.Restock)
	products.Post("/:id/image", productHandler.UploadImage)

	// Invoices (facturas de compra)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SalesQuery)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)

	// Returns (devoluciones a proveedor)
	returns := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.CreateReturn, deps.SalesQuery)
	returns.Post("/", returnHandler.Create)
	returns.Get("/", returnHandler.List)

	// Inventory
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AuditUC, deps.AlertsUC)
	invGroup.Get("/stock-audit", adminOnly, inventoryHandler.StockAudit)
	invGroup.Get("/alerts", inventoryHandler.Alerts)

	// Analytics
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.OverviewUC, deps.TurnoverUC, deps.SalesByDateUC)
	analyticsGroup.Get("/overview", analyticsHandler.Overview)
	analyticsGroup.Get("/turnover", analyticsHandler.Turnover)
	analyticsGroup.Get("/sales-by-date", analyticsHandler.SalesByDate)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.PDFReportUC, deps.XLSXReportUC)
	reportsGroup.Get("/sales/pdf", reportHandler.SalesPDF)
	reportsGroup.Get("/returns/pdf", reportHandler.ReturnsPDF)
	reportsGroup.Get("/turnover/xlsx", reportHandler.TurnoverXLSX)
}
