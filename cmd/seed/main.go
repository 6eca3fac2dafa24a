// Seed de datos de demostración: carga un inventario de plomería y un par de
// proveedores en las colecciones CSV. Pensado para entornos de desarrollo;
// no toca colecciones que ya tengan datos.
package main

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/csvstore"
	"github.com/jdrojas/plomeria-pos/pkg/config"
	"github.com/jdrojas/plomeria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store := csvstore.New(cfg.Store.DataDir)
	stockRepo := csvstore.NewStockRepository(store)
	supplierRepo := csvstore.NewSupplierRepository(store)

	existing, err := stockRepo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		log.Fatal().Err(err).Msg("cargar stock")
	}
	if len(existing) > 0 {
		log.Info().Int("productos", len(existing)).Msg("el stock ya tiene datos, no se siembra nada")
		return
	}

	items := []*entity.StockItem{
		{StockID: 1, ProductID: "P1", Quantity: 20, Description: "Grifo monomando", Price: decimal.NewFromFloat(10.00)},
		{StockID: 2, ProductID: "P2", Quantity: 50, Description: "Tubo PVC 1/2\" x 3m", Price: decimal.NewFromFloat(4.50)},
		{StockID: 3, ProductID: "P3", Quantity: 35, Description: "Codo PVC 90° 1/2\"", Price: decimal.NewFromFloat(0.80)},
		{StockID: 4, ProductID: "P4", Quantity: 15, Description: "Llave de paso 1/2\"", Price: decimal.NewFromFloat(6.25)},
		{StockID: 5, ProductID: "P5", Quantity: 40, Description: "Cinta teflón 12mm", Price: decimal.NewFromFloat(0.60)},
		{StockID: 6, ProductID: "P6", Quantity: 10, Description: "Sifón botella lavabo", Price: decimal.NewFromFloat(3.90)},
		{StockID: 7, ProductID: "P7", Quantity: 25, Description: "Flexible inox 30cm", Price: decimal.NewFromFloat(2.75)},
		{StockID: 8, ProductID: "P8", Quantity: 12, Description: "Válvula flotador cisterna", Price: decimal.NewFromFloat(8.40)},
	}
	for _, it := range items {
		if err := stockRepo.Create(it); err != nil {
			log.Fatal().Err(err).Str("producto", it.ProductID).Msg("sembrar stock")
		}
	}

	suppliers := []*entity.Supplier{
		{
			SupplierID: "distribuidora-hidrotec",
			Name:       "Distribuidora Hidrotec",
			Address:    "Calle 45 #12-30",
			Phone:      "3104567890",
			Email:      "ventas@hidrotec.example",
		},
		{
			SupplierID: "tuberias-del-norte",
			Name:       "Tuberías del Norte",
			Address:    "Av. Industrial km 4",
			Phone:      "3009876543",
			Email:      "pedidos@tubnorte.example",
		},
	}
	for _, s := range suppliers {
		if err := supplierRepo.Create(s); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("proveedor", s.SupplierID).Msg("sembrar proveedores")
		}
	}

	log.Info().
		Int("productos", len(items)).
		Int("proveedores", len(suppliers)).
		Str("dir", cfg.Store.DataDir).
		Msg("datos de demostración sembrados")
}
