package sales

import (
	"context"

	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
)

// InvoiceRenderer escribe el artefacto de la factura y devuelve su ruta.
//
// El contrato exige que el archivo esté completamente escrito y cerrado
// antes de retornar: el persister confía en que la ruta existe. Un fallo de
// E/S debe envolverse en domain.ErrRender, y en ese caso la venta no se
// persiste.
type InvoiceRenderer interface {
	Render(ctx context.Context, sale *entity.Sale, lines []LineItem, totals Totals) (artifactPath string, err error)
}
