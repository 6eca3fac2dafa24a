package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/application/usecase"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/csvstore"
)

func newPurchaseUC(t *testing.T) *usecase.PurchaseUseCase {
	t.Helper()
	store := csvstore.New(t.TempDir())
	return usecase.NewPurchaseUseCase(csvstore.NewPurchaseRepository(store))
}

func TestPurchaseUseCase_CreateCalculaTotal(t *testing.T) {
	uc := newPurchaseUC(t)

	out, err := uc.Create(dto.CreatePurchaseRequest{
		SupplierID: "hidrotec",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "P1", Quantity: 10, UnitCost: decimal.NewFromFloat(7.50)},
			{ProductID: "P2", Quantity: 5, UnitCost: decimal.NewFromFloat(3.00)},
		},
		Date: "2025-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.PurchaseID)
	assert.Equal(t, "90.00", out.Total.StringFixed(2), "total = Σ cantidad × costo unitario")
	assert.Equal(t, "2025-06-01", out.Date)
}

func TestPurchaseUseCase_IDSecuencial(t *testing.T) {
	uc := newPurchaseUC(t)

	req := dto.CreatePurchaseRequest{
		SupplierID: "hidrotec",
		Items:      []dto.PurchaseItemRequest{{ProductID: "P1", Quantity: 1, UnitCost: decimal.NewFromFloat(1)}},
	}
	primero, err := uc.Create(req)
	require.NoError(t, err)
	segundo, err := uc.Create(req)
	require.NoError(t, err)

	assert.Equal(t, 1, primero.PurchaseID)
	assert.Equal(t, 2, segundo.PurchaseID)
}

func TestPurchaseUseCase_CreateInvalido(t *testing.T) {
	uc := newPurchaseUC(t)

	_, err := uc.Create(dto.CreatePurchaseRequest{SupplierID: "", Items: nil})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreatePurchaseRequest{
		SupplierID: "hidrotec",
		Items:      []dto.PurchaseItemRequest{{ProductID: "P1", Quantity: 0, UnitCost: decimal.NewFromFloat(1)}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "una compra con cantidad cero no tiene sentido")

	_, err = uc.Create(dto.CreatePurchaseRequest{
		SupplierID: "hidrotec",
		Items:      []dto.PurchaseItemRequest{{ProductID: "P1", Quantity: 1, UnitCost: decimal.NewFromFloat(1)}},
		Date:       "15/06/2025",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "la fecha debe venir como 2006-01-02")
}

func TestPurchaseUseCase_ListVacioSinArchivo(t *testing.T) {
	uc := newPurchaseUC(t)

	out, err := uc.List()
	require.ErrorIs(t, err, domain.ErrMissingFile)
	assert.Empty(t, out)
}
