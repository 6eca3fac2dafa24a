package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
)

func testStock() []*entity.StockItem {
	return []*entity.StockItem{
		{StockID: 1, ProductID: "P1", Quantity: 20, Description: "Grifo monomando", Price: decimal.NewFromFloat(10.00)},
		{StockID: 2, ProductID: "P2", Quantity: 50, Description: "Tubo PVC 1/2\" x 3m", Price: decimal.NewFromFloat(4.50)},
		{StockID: 3, ProductID: "P3", Quantity: 0, Description: "Codo PVC 90°", Price: decimal.NewFromFloat(0.80)},
	}
}

func TestBuildSale_VentaSimple(t *testing.T) {
	fecha := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	sale, lines, totals, err := sales.BuildSale(
		[]sales.Selection{{ProductID: "P1", Quantity: 3}},
		testStock(), nil, decimal.Zero, fecha,
	)
	require.NoError(t, err)

	assert.Equal(t, 1, sale.SaleID, "la primera venta recibe el id 1")
	assert.Equal(t, fecha, sale.Date)
	assert.Equal(t, entity.PaymentCash, sale.PaymentMethod)
	assert.Empty(t, sale.InvoiceRef, "la referencia de factura la completa el orquestador")

	require.Len(t, lines, 1)
	assert.Equal(t, "Grifo monomando", lines[0].Description)
	assert.Equal(t, "30.00", lines[0].Subtotal.StringFixed(2))

	assert.Equal(t, "30.00", totals.NetTotal.StringFixed(2))
	assert.True(t, totals.TaxTotal.IsZero(), "sin tasa configurada no hay impuesto")
	assert.True(t, totals.GrandTotal.Equal(totals.NetTotal))
	assert.True(t, sale.Total.Equal(totals.NetTotal), "el total persistido es el neto, sin impuesto")
}

func TestBuildSale_ConImpuestoPlano(t *testing.T) {
	taxRate := decimal.NewFromFloat(0.27)

	sale, _, totals, err := sales.BuildSale(
		[]sales.Selection{{ProductID: "P1", Quantity: 3}},
		testStock(), nil, taxRate, time.Now(),
	)
	require.NoError(t, err)

	assert.Equal(t, "30.00", totals.NetTotal.StringFixed(2))
	assert.Equal(t, "8.10", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "38.10", totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "30.00", sale.Total.StringFixed(2),
		"el impuesto se expone por separado, nunca se pliega en el total persistido")
}

func TestBuildSale_VariasLineasEnOrden(t *testing.T) {
	_, lines, totals, err := sales.BuildSale(
		[]sales.Selection{
			{ProductID: "P2", Quantity: 2},
			{ProductID: "P1", Quantity: 1},
		},
		testStock(), nil, decimal.Zero, time.Now(),
	)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// Las líneas conservan el orden de selección, no el del stock.
	assert.Equal(t, "P2", lines[0].ProductID)
	assert.Equal(t, "P1", lines[1].ProductID)
	assert.Equal(t, "19.00", totals.NetTotal.StringFixed(2))
}

func TestBuildSale_ProductoDesconocidoAbortaTodo(t *testing.T) {
	_, _, _, err := sales.BuildSale(
		[]sales.Selection{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "P9", Quantity: 1},
		},
		testStock(), nil, decimal.Zero, time.Now(),
	)
	require.ErrorIs(t, err, domain.ErrUnknownProduct, "no hay venta parcial si un código no existe")
}

func TestBuildSale_CantidadCeroProduceLineaDeValorCero(t *testing.T) {
	_, lines, totals, err := sales.BuildSale(
		[]sales.Selection{{ProductID: "P3", Quantity: 0}},
		testStock(), nil, decimal.Zero, time.Now(),
	)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Subtotal.IsZero())
	assert.True(t, totals.NetTotal.IsZero())
}

func TestBuildSale_StockInsuficiente(t *testing.T) {
	_, _, _, err := sales.BuildSale(
		[]sales.Selection{{ProductID: "P1", Quantity: 21}},
		testStock(), nil, decimal.Zero, time.Now(),
	)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestBuildSale_SinSelecciones(t *testing.T) {
	_, _, _, err := sales.BuildSale(nil, testStock(), nil, decimal.Zero, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNextSaleID_MaximoMasUno(t *testing.T) {
	existing := []*entity.Sale{
		{SaleID: 3},
		{SaleID: 7},
		{SaleID: 5},
	}
	assert.Equal(t, 8, sales.NextSaleID(existing))
	assert.Equal(t, 1, sales.NextSaleID(nil), "sin ventas previas arranca en 1")
}
