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

	_ "github.com/agrocampo/agroadmin-api/docs"
	appanalytics "github.com/agrocampo/agroadmin-api/internal/application/analytics"
	"github.com/agrocampo/agroadmin-api/internal/application/auth"
	"github.com/agrocampo/agroadmin-api/internal/application/inventory"
	"github.com/agrocampo/agroadmin-api/internal/application/reports"
	"github.com/agrocampo/agroadmin-api/internal/application/sales"
	"github.com/agrocampo/agroadmin-api/internal/application/usecase"
	infraxlsx "github.com/agrocampo/agroadmin-api/internal/infrastructure/excel"
	infrapdf "github.com/agrocampo/agroadmin-api/internal/infrastructure/pdf"
	"github.com/agrocampo/agroadmin-api/internal/infrastructure/postgres"
	"github.com/agrocampo/agroadmin-api/internal/infrastructure/storage"
	httpRouter "github.com/agrocampo/agroadmin-api/internal/interfaces/http"
	"github.com/agrocampo/agroadmin-api/pkg/config"
	"github.com/agrocampo/agroadmin-api/pkg/logger"
)

// @title           AgroAdmin API
// @version         1.0
// @description     API de administración para distribución de fertilizantes.
// @BasePath        /api
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Almacenamiento de imágenes en GCS: opcional. Sin bucket configurado la
	// subida de imágenes responde STORAGE_DISABLED.
	var imageStorage usecase.ImageStorage
	if cfg.Storage.Bucket != "" {
		uploader, err := storage.NewGCSUploader(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento GCS")
		}
		defer uploader.Close()
		imageStorage = uploader
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("almacenamiento de imágenes habilitado")
	} else {
		log.Warn().Msg("STORAGE_BUCKET no configurado, subida de imágenes deshabilitada")
	}

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, imageStorage)
	invoiceUC := usecase.NewInvoiceUseCase(txRunner, invoiceRepo, companyRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, customerRepo, productRepo)
	createReturnUC := sales.NewCreateReturnUseCase(txRunner, companyRepo, invoiceRepo, productRepo)
	salesQueryUC := sales.NewQueryUseCase(saleRepo, returnRepo, customerRepo, companyRepo, productRepo)
	auditUC := inventory.NewAuditUseCase(productRepo, movementRepo, saleRepo, returnRepo)
	alertsUC := inventory.NewAlertsUseCase(productRepo, cfg.Alerts.ExpiryDays)
	overviewUC := appanalytics.NewOverviewUseCase(analyticsRepo)
	turnoverUC := appanalytics.NewTurnoverUseCase(analyticsRepo)
	salesByDateUC := appanalytics.NewSalesByDateUseCase(analyticsRepo)
	pdfReportUC := reports.NewPDFReportUseCase(analyticsRepo, infrapdf.NewMarotoReportRenderer())
	xlsxReportUC := reports.NewXLSXTurnoverUseCase(turnoverUC, infraxlsx.NewExcelizeExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 << 20, // subida de imágenes de producto
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgroAdmin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		InvoiceUC:     invoiceUC,
		CreateSale:    createSaleUC,
		CreateReturn:  createReturnUC,
		SalesQuery:    salesQueryUC,
		AuditUC:       auditUC,
		AlertsUC:      alertsUC,
		OverviewUC:    overviewUC,
		TurnoverUC:    turnoverUC,
		SalesByDateUC: salesByDateUC,
		PDFReportUC:   pdfReportUC,
		XLSXReportUC:  xlsxReportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
