package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/pkg/metrics"
)

var _ sales.InvoiceRenderer = (*TextRenderer)(nil)

// TextRenderer escribe la factura como texto plano.
type TextRenderer struct {
	dir          string
	businessName string
}

// NewTextRenderer construye el renderer de texto.
func NewTextRenderer(dir, businessName string) *TextRenderer {
	return &TextRenderer{dir: dir, businessName: businessName}
}

// Render escribe facturas/factura_{id}.txt: cabecera con número y fecha, una
// línea por ítem con su subtotal a 2 decimales y el resumen de totales.
// Con tasa de impuesto cero solo se imprime la línea de subtotal.
func (r *TextRenderer) Render(_ context.Context, sale *entity.Sale, lines []sales.LineItem, totals sales.Totals) (string, error) {
	var b bytes.Buffer

	sep := strings.Repeat("-", 46)
	fmt.Fprintf(&b, "%s\n", r.businessName)
	fmt.Fprintf(&b, "FACTURA N° %d\n", sale.SaleID)
	fmt.Fprintf(&b, "Fecha: %s\n", sale.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "%s\n", sep)
	for _, l := range lines {
		fmt.Fprintf(&b, "%s x%d @ $%s = $%s\n",
			l.Description, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Subtotal: $%s\n", totals.NetTotal.StringFixed(2))
	if totals.TaxRate.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "IVA (%s%%): $%s\n",
			totals.TaxRate.Mul(decimal.NewFromInt(100)).String(), totals.TaxTotal.StringFixed(2))
		fmt.Fprintf(&b, "Total: $%s\n", totals.GrandTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "Pago: %s\n", sale.PaymentMethod)

	path := artifactPath(r.dir, sale.SaleID, FormatText)
	if err := writeArtifact(r.dir, path, b.Bytes()); err != nil {
		return "", err
	}
	metrics.FacturasGeneradas.WithLabelValues(FormatText).Inc()
	return path, nil
}
