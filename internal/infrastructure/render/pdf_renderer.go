package render

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/pkg/metrics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.InvoiceRenderer = (*PDFRenderer)(nil)

// PDFRenderer escribe la factura como PDF A4 usando Maroto v2.
type PDFRenderer struct {
	dir          string
	businessName string
}

// NewPDFRenderer construye el renderer PDF.
func NewPDFRenderer(dir, businessName string) *PDFRenderer {
	return &PDFRenderer{dir: dir, businessName: businessName}
}

// Render genera facturas/factura_{id}.pdf con cabecera, tabla de líneas y
// bloque de totales.
func (r *PDFRenderer) Render(_ context.Context, sale *entity.Sale, lines []sales.LineItem, totals sales.Totals) (string, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura %d", sale.SaleID), true).
		WithAuthor(r.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, ln := range tableDetailRows(lines) {
		m.AddRows(ln)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("%w: generar documento PDF: %v", domain.ErrRender, err)
	}

	path := artifactPath(r.dir, sale.SaleID, FormatPDF)
	if err := writeArtifact(r.dir, path, doc.GetBytes()); err != nil {
		return "", err
	}
	metrics.FacturasGeneradas.WithLabelValues(FormatPDF).Inc()
	return path, nil
}

// headerRow: nombre del negocio (izq) y número + fecha (der).
func (r *PDFRenderer) headerRow(sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Suministros de plomería", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", sale.SaleID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de venta.
func tableDetailRows(lines []sales.LineItem) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. Con tasa cero solo se
// muestra el subtotal.
func totalsRow(totals sales.Totals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := col.New(3)
	values := col.New(3)
	if totals.TaxRate.GreaterThan(decimal.Zero) {
		labels.Add(
			label("Subtotal:", 1),
			label(fmt.Sprintf("IVA (%s%%):", totals.TaxRate.Mul(decimal.NewFromInt(100)).String()), 9),
			label("TOTAL A PAGAR:", 17),
		)
		values.Add(
			value("$"+totals.NetTotal.StringFixed(2), 1),
			value("$"+totals.TaxTotal.StringFixed(2), 9),
			value("$"+totals.GrandTotal.StringFixed(2), 17),
		)
	} else {
		labels.Add(label("Subtotal:", 1))
		values.Add(value("$"+totals.NetTotal.StringFixed(2), 1))
	}

	return row.New(26).Add(
		col.New(3),
		labels,
		values,
		col.New(3),
	)
}

// footerRow: método de pago y leyenda.
func footerRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Pago: "+sale.PaymentMethod, props.Text{Size: 8, Top: 1}),
		text.New("Gracias por su compra. Conserve esta factura como soporte.", props.Text{
			Size: 7, Top: 6, Color: colorGray,
		}),
	))
}
