package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/render"
)

func testSale() (*entity.Sale, []sales.LineItem, sales.Totals) {
	sale := &entity.Sale{
		SaleID:        1,
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Products:      []entity.SaleLine{{ProductID: "P1", Quantity: 3}},
		Total:         decimal.NewFromFloat(30.00),
		PaymentMethod: entity.PaymentCash,
	}
	lines := []sales.LineItem{
		{
			ProductID:   "P1",
			Description: "Grifo monomando",
			Quantity:    3,
			UnitPrice:   decimal.NewFromFloat(10.00),
			Subtotal:    decimal.NewFromFloat(30.00),
		},
	}
	totals := sales.Totals{
		NetTotal:   decimal.NewFromFloat(30.00),
		TaxRate:    decimal.Zero,
		TaxTotal:   decimal.Zero,
		GrandTotal: decimal.NewFromFloat(30.00),
	}
	return sale, lines, totals
}

func TestTextRenderer_EscribeArtefacto(t *testing.T) {
	dir := t.TempDir()
	r := render.NewTextRenderer(dir, "Plomería El Tornillo")
	sale, lines, totals := testSale()

	path, err := r.Render(context.Background(), sale, lines, totals)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "factura_1.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	texto := string(content)
	assert.Contains(t, texto, "Plomería El Tornillo")
	assert.Contains(t, texto, "FACTURA N° 1")
	assert.Contains(t, texto, "Fecha: 2025-06-15")
	assert.Contains(t, texto, "Grifo monomando x3 @ $10.00 = $30.00")
	assert.Contains(t, texto, "Subtotal: $30.00")
	assert.Contains(t, texto, "Pago: efectivo")
	assert.NotContains(t, texto, "IVA", "con tasa cero no se imprime la línea de impuesto")
}

func TestTextRenderer_ConImpuesto(t *testing.T) {
	dir := t.TempDir()
	r := render.NewTextRenderer(dir, "Plomería El Tornillo")
	sale, lines, _ := testSale()
	totals := sales.Totals{
		NetTotal:   decimal.NewFromFloat(30.00),
		TaxRate:    decimal.NewFromFloat(0.27),
		TaxTotal:   decimal.NewFromFloat(8.10),
		GrandTotal: decimal.NewFromFloat(38.10),
	}

	path, err := r.Render(context.Background(), sale, lines, totals)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	texto := string(content)
	assert.Contains(t, texto, "IVA (27%): $8.10")
	assert.Contains(t, texto, "Total: $38.10")
}

func TestTextRenderer_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "facturas")
	r := render.NewTextRenderer(dir, "Plomería El Tornillo")
	sale, lines, totals := testSale()

	path, err := r.Render(context.Background(), sale, lines, totals)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err, "el directorio de facturas se crea bajo demanda")
}

func TestXMLRenderer_EscribeArtefacto(t *testing.T) {
	dir := t.TempDir()
	r := render.NewXMLRenderer(dir, "Plomería El Tornillo")
	sale, lines, totals := testSale()

	path, err := r.Render(context.Background(), sale, lines, totals)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "factura_1.xml"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	texto := string(content)
	assert.Contains(t, texto, "<Factura")
	assert.Contains(t, texto, "Plomería El Tornillo")
	assert.Contains(t, texto, "<Subtotal>30.00</Subtotal>")
}

func TestNew_FormatoDesconocido(t *testing.T) {
	_, err := render.New("docx", t.TempDir(), "X")
	require.Error(t, err)
}
