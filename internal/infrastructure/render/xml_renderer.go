package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/pkg/metrics"
)

var _ sales.InvoiceRenderer = (*XMLRenderer)(nil)

// XMLRenderer escribe la factura como documento XML (para integraciones que
// consumen el artefacto con una herramienta externa).
type XMLRenderer struct {
	dir          string
	businessName string
}

// NewXMLRenderer construye el renderer XML.
func NewXMLRenderer(dir, businessName string) *XMLRenderer {
	return &XMLRenderer{dir: dir, businessName: businessName}
}

// Render genera facturas/factura_{id}.xml con cabecera, líneas y totales.
func (r *XMLRenderer) Render(_ context.Context, sale *entity.Sale, lines []sales.LineItem, totals sales.Totals) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Factura")
	root.CreateAttr("numero", fmt.Sprintf("%d", sale.SaleID))
	root.CreateAttr("fecha", sale.Date.Format("2006-01-02"))

	emisor := root.CreateElement("Emisor")
	emisor.CreateElement("Nombre").SetText(r.businessName)

	lineas := root.CreateElement("Lineas")
	for _, l := range lines {
		linea := lineas.CreateElement("Linea")
		linea.CreateAttr("producto", l.ProductID)
		linea.CreateAttr("cantidad", fmt.Sprintf("%d", l.Quantity))
		linea.CreateElement("Descripcion").SetText(l.Description)
		linea.CreateElement("PrecioUnitario").SetText(l.UnitPrice.StringFixed(2))
		linea.CreateElement("Subtotal").SetText(l.Subtotal.StringFixed(2))
	}

	tot := root.CreateElement("Totales")
	tot.CreateElement("Subtotal").SetText(totals.NetTotal.StringFixed(2))
	if totals.TaxRate.GreaterThan(decimal.Zero) {
		imp := tot.CreateElement("Impuesto")
		imp.CreateAttr("tasa", totals.TaxRate.String())
		imp.SetText(totals.TaxTotal.StringFixed(2))
		tot.CreateElement("Total").SetText(totals.GrandTotal.StringFixed(2))
	}

	pago := root.CreateElement("Pago")
	pago.CreateAttr("metodo", sale.PaymentMethod)

	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("%w: serializar XML: %v", domain.ErrRender, err)
	}

	path := artifactPath(r.dir, sale.SaleID, FormatXML)
	if err := writeArtifact(r.dir, path, buf.Bytes()); err != nil {
		return "", err
	}
	metrics.FacturasGeneradas.WithLabelValues(FormatXML).Inc()
	return path, nil
}
