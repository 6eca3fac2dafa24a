package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/jdrojas/plomeria-pos/internal/application/reports"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/application/usecase"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/csvstore"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/postgres"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/render"
	httpRouter "github.com/jdrojas/plomeria-pos/internal/interfaces/http"
	"github.com/jdrojas/plomeria-pos/pkg/config"
	"github.com/jdrojas/plomeria-pos/pkg/logger"
)

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
		Str("store", cfg.Store.Driver).
		Str("formato_factura", cfg.Invoice.Format).
		Msg("iniciando aplicación")

	var (
		stockRepo    repository.StockRepository
		supplierRepo repository.SupplierRepository
		purchaseRepo repository.PurchaseRepository
		saleRepo     repository.SaleRepository
	)
	switch cfg.Store.Driver {
	case "postgres":
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		stockRepo = postgres.NewStockRepository(pool)
		supplierRepo = postgres.NewSupplierRepository(pool)
		purchaseRepo = postgres.NewPurchaseRepository(pool)
		saleRepo = postgres.NewSaleRepository(pool)
	default:
		store := csvstore.New(cfg.Store.DataDir)
		stockRepo = csvstore.NewStockRepository(store)
		supplierRepo = csvstore.NewSupplierRepository(store)
		purchaseRepo = csvstore.NewPurchaseRepository(store)
		saleRepo = csvstore.NewSaleRepository(store)
	}

	renderer, err := render.New(cfg.Invoice.Format, cfg.Invoice.Dir, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("renderer de facturas")
	}

	stockUC := usecase.NewStockUseCase(stockRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo)
	registerSaleUC := sales.NewRegisterSaleUseCase(stockRepo, saleRepo, renderer, cfg.Sales.TaxRate)
	exportUC := reports.NewExportUseCase(stockRepo, saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Plomería POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:      stockUC,
		SupplierUC:   supplierUC,
		PurchaseUC:   purchaseUC,
		RegisterSale: registerSaleUC,
		ExportUC:     exportUC,
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
