package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/csvstore"
)

func TestStore_ColeccionAusente(t *testing.T) {
	store := csvstore.New(t.TempDir())

	rows, err := store.Load("stock")
	require.ErrorIs(t, err, domain.ErrMissingFile,
		"archivo ausente no es un error fatal, es modo degradado")
	assert.Empty(t, rows)
}

func TestStore_GuardarYCargar(t *testing.T) {
	store := csvstore.New(t.TempDir())

	header := []string{"stock_id", "product_id"}
	err := store.Save("stock", header, [][]string{
		{"1", "P1"},
		{"2", "P2"},
	})
	require.NoError(t, err)

	rows, err := store.Load("stock")
	require.NoError(t, err)
	require.Len(t, rows, 2, "la cabecera no cuenta como fila de datos")
	assert.Equal(t, []string{"1", "P1"}, rows[0])
}

func TestStore_SaveReemplazaTodo(t *testing.T) {
	store := csvstore.New(t.TempDir())
	header := []string{"stock_id", "product_id"}

	require.NoError(t, store.Save("stock", header, [][]string{{"1", "P1"}, {"2", "P2"}}))
	require.NoError(t, store.Save("stock", header, [][]string{{"3", "P3"}}))

	rows, err := store.Load("stock")
	require.NoError(t, err)
	require.Len(t, rows, 1, "Save es reemplazo completo, no append")
	assert.Equal(t, "P3", rows[0][1])
}

func TestStore_SaveNoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	store := csvstore.New(dir)

	require.NoError(t, store.Save("stock", []string{"a"}, [][]string{{"1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stock.csv", entries[0].Name())
}

func TestStockRepo_CicloCompleto(t *testing.T) {
	repo := csvstore.NewStockRepository(csvstore.New(t.TempDir()))

	item := &entity.StockItem{
		StockID:     1,
		ProductID:   "P1",
		Quantity:    20,
		Description: "Grifo monomando",
		Price:       decimal.NewFromFloat(10.00),
	}
	require.NoError(t, repo.Create(item))

	got, err := repo.GetByProductID("P1")
	require.NoError(t, err)
	assert.Equal(t, "Grifo monomando", got.Description)
	assert.True(t, got.Price.Equal(item.Price))

	got.Quantity = 17
	require.NoError(t, repo.Update(got))

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 17, items[0].Quantity)
}

func TestStockRepo_UpdateInexistente(t *testing.T) {
	repo := csvstore.NewStockRepository(csvstore.New(t.TempDir()))
	require.NoError(t, repo.Create(&entity.StockItem{StockID: 1, ProductID: "P1", Price: decimal.Zero}))

	err := repo.Update(&entity.StockItem{StockID: 99, ProductID: "P9", Price: decimal.Zero})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleRepo_AppendYRelectura(t *testing.T) {
	dir := t.TempDir()
	repo := csvstore.NewSaleRepository(csvstore.New(dir))

	sale := &entity.Sale{
		SaleID: 1,
		Date:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Products: []entity.SaleLine{
			{ProductID: "P1", Quantity: 3},
			{ProductID: "P2", Quantity: 1},
		},
		Total:         decimal.NewFromFloat(34.50),
		PaymentMethod: entity.PaymentCash,
		InvoiceRef:    filepath.Join("facturas", "factura_1.txt"),
	}
	require.NoError(t, repo.Append(sale))

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", got.Date.Format("2006-01-02"))
	require.Len(t, got.Products, 2, "las líneas sobreviven la codificación id:cantidad")
	assert.Equal(t, 3, got.Products[0].Quantity)
	assert.True(t, got.Total.Equal(sale.Total))
	assert.Equal(t, sale.InvoiceRef, got.InvoiceRef)

	_, err = repo.GetByID(99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierRepo_CicloCompleto(t *testing.T) {
	repo := csvstore.NewSupplierRepository(csvstore.New(t.TempDir()))

	s := &entity.Supplier{
		SupplierID: "hidrotec",
		Name:       "Distribuidora Hidrotec",
		Phone:      "3104567890",
	}
	require.NoError(t, repo.Create(s))

	got, err := repo.GetByID("hidrotec")
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Hidrotec", got.Name)

	got.Phone = "3000000000"
	require.NoError(t, repo.Update(got))

	suppliers, err := repo.List()
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "3000000000", suppliers[0].Phone)
}

func TestPurchaseRepo_AppendYRelectura(t *testing.T) {
	repo := csvstore.NewPurchaseRepository(csvstore.New(t.TempDir()))

	p := &entity.Purchase{
		PurchaseID: 1,
		SupplierID: "hidrotec",
		Products: []entity.PurchaseLine{
			{ProductID: "P1", Quantity: 10, UnitCost: decimal.NewFromFloat(7.50)},
		},
		Date:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Total: decimal.NewFromFloat(75.00),
	}
	require.NoError(t, repo.Append(p))

	purchases, err := repo.List()
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	require.Len(t, purchases[0].Products, 1)
	assert.True(t, purchases[0].Products[0].UnitCost.Equal(decimal.NewFromFloat(7.50)),
		"el costo unitario sobrevive la codificación id:cantidad:costo")
	assert.True(t, purchases[0].Total.Equal(p.Total))
}
