// Package render implementa los renderers de factura. Todos escriben en la
// ruta determinista facturas/factura_{saleID}.{ext} (bajo el directorio
// configurado) y garantizan que el archivo queda escrito y cerrado antes de
// devolver la ruta: los pasos posteriores del flujo de venta dependen de que
// el artefacto exista de inmediato.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain"
)

// Formatos de factura soportados.
const (
	FormatText = "txt"
	FormatPDF  = "pdf"
	FormatXML  = "xml"
)

// New construye el renderer para el formato configurado.
// businessName aparece en la cabecera de la factura.
func New(format, dir, businessName string) (sales.InvoiceRenderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(dir, businessName), nil
	case FormatPDF:
		return NewPDFRenderer(dir, businessName), nil
	case FormatXML:
		return NewXMLRenderer(dir, businessName), nil
	default:
		return nil, fmt.Errorf("formato de factura desconocido: %q", format)
	}
}

// artifactPath arma la ruta determinista del artefacto.
func artifactPath(dir string, saleID int, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("factura_%d.%s", saleID, ext))
}

// writeArtifact escribe content en path (creando el directorio si hace
// falta), con Sync y Close verificados. Cualquier fallo de E/S se envuelve
// en domain.ErrRender.
func writeArtifact(dir, path string, content []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: crear directorio de facturas: %v", domain.ErrRender, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: crear %s: %v", domain.ErrRender, path, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrRender, path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: volcar %s: %v", domain.ErrRender, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cerrar %s: %v", domain.ErrRender, path, err)
	}
	return nil
}
