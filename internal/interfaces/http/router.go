package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jdrojas/plomeria-pos/internal/application/reports"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC      *usecase.StockUseCase
	SupplierUC   *usecase.SupplierUseCase
	PurchaseUC   *usecase.PurchaseUseCase
	RegisterSale *sales.RegisterSaleUseCase
	ExportUC     *reports.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock (inventario)
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/:productId", stockHandler.GetByProductID)
	stock.Put("/:productId", stockHandler.Update)

	// Suppliers (proveedores)
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Purchases (compras a proveedores, append-only)
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	// Sales (ventas y facturas)
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.RegisterSale)
	salesGroup.Post("/", salesHandler.Register)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Get("/:id/invoice", salesHandler.DownloadInvoice)

	// Reports (exportación XLSX)
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ExportUC)
	reportsGroup.Get("/sales.xlsx", reportHandler.SalesReport)
	reportsGroup.Get("/stock.xlsx", reportHandler.StockReport)
}
