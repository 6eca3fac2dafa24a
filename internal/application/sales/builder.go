package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/catalog"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
)

// Selection un producto elegido por el usuario con la cantidad pedida.
type Selection struct {
	ProductID string
	Quantity  int
}

// LineItem línea de la venta con el subtotal ya calculado.
type LineItem struct {
	ProductID   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Totals totales de la venta. NetTotal es la suma de subtotales; con tasa
// cero, TaxTotal es cero y GrandTotal es igual a NetTotal.
type Totals struct {
	NetTotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// BuildSale construye la venta en memoria a partir de las selecciones, sin
// persistir nada ni tocar el stock.
//
//  1. Resuelve cada producto vía catalog.FindProduct; si alguno no existe la
//     operación completa falla con ErrUnknownProduct (no hay venta parcial).
//  2. Valida disponibilidad: cantidad pedida > cantidad en stock es
//     ErrInsufficientStock. La cantidad 0 se admite (línea de valor cero).
//  3. subtotal = cantidad × precio unitario; NetTotal = Σ subtotales.
//  4. Con taxRate > 0: TaxTotal = NetTotal × taxRate y GrandTotal los expone
//     por separado (la factura los muestra, nunca se pliegan en el total).
//  5. SaleID = max(existentes)+1; la primera venta recibe el 1.
//
// InvoiceRef queda vacío: lo completa el orquestador cuando el renderer
// termina de escribir el artefacto.
func BuildSale(
	selections []Selection,
	stock []*entity.StockItem,
	existing []*entity.Sale,
	taxRate decimal.Decimal,
	now time.Time,
) (*entity.Sale, []LineItem, Totals, error) {
	if len(selections) == 0 {
		return nil, nil, Totals{}, domain.ErrInvalidInput
	}

	lines := make([]LineItem, 0, len(selections))
	products := make([]entity.SaleLine, 0, len(selections))
	netTotal := decimal.Zero

	for _, sel := range selections {
		if sel.ProductID == "" || sel.Quantity < 0 {
			return nil, nil, Totals{}, domain.ErrInvalidInput
		}
		item, err := catalog.FindProduct(sel.ProductID, stock)
		if err != nil {
			return nil, nil, Totals{}, err
		}
		if sel.Quantity > item.Quantity {
			return nil, nil, Totals{}, domain.ErrInsufficientStock
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(sel.Quantity)))
		lines = append(lines, LineItem{
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    sel.Quantity,
			UnitPrice:   item.Price,
			Subtotal:    subtotal,
		})
		products = append(products, entity.SaleLine{ProductID: item.ProductID, Quantity: sel.Quantity})
		netTotal = netTotal.Add(subtotal)
	}

	totals := Totals{
		NetTotal:   netTotal,
		TaxRate:    taxRate,
		TaxTotal:   decimal.Zero,
		GrandTotal: netTotal,
	}
	if taxRate.GreaterThan(decimal.Zero) {
		totals.TaxTotal = netTotal.Mul(taxRate).Round(2)
		totals.GrandTotal = netTotal.Add(totals.TaxTotal).Round(2)
	}

	sale := &entity.Sale{
		SaleID:        NextSaleID(existing),
		Date:          now,
		Products:      products,
		Total:         netTotal,
		PaymentMethod: entity.PaymentCash,
	}
	return sale, lines, totals, nil
}

// NextSaleID asigna el siguiente id secuencial: máximo existente + 1.
// Monotónico y sin huecos solo bajo el supuesto de escritor único.
func NextSaleID(existing []*entity.Sale) int {
	max := 0
	for _, s := range existing {
		if s.SaleID > max {
			max = s.SaleID
		}
	}
	return max + 1
}
