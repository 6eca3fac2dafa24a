package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/catalog"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
)

func TestFindProduct_Encontrado(t *testing.T) {
	stock := []*entity.StockItem{
		{StockID: 1, ProductID: "P1", Description: "Grifo", Price: decimal.NewFromFloat(10)},
		{StockID: 2, ProductID: "P2", Description: "Tubo", Price: decimal.NewFromFloat(4.5)},
	}

	item, err := catalog.FindProduct("P2", stock)
	require.NoError(t, err)
	assert.Equal(t, "Tubo", item.Description)
}

func TestFindProduct_Desconocido(t *testing.T) {
	stock := []*entity.StockItem{
		{StockID: 1, ProductID: "P1"},
	}

	_, err := catalog.FindProduct("P9", stock)
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestFindProduct_DuplicadoGanaMenorStockID(t *testing.T) {
	// Duplicados solo posibles en archivos preexistentes; el alta los rechaza.
	stock := []*entity.StockItem{
		{StockID: 5, ProductID: "P1", Description: "registro nuevo"},
		{StockID: 2, ProductID: "P1", Description: "registro viejo"},
	}

	item, err := catalog.FindProduct("P1", stock)
	require.NoError(t, err)
	assert.Equal(t, 2, item.StockID, "con código repetido gana el menor stock_id")
}
