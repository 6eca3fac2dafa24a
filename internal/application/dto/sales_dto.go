package dto

import "github.com/shopspring/decimal"

// SaleItemRequest selección de producto con cantidad. Cantidad 0 se admite
// y produce una línea de valor cero (comportamiento heredado).
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// RegisterSaleRequest body para POST /api/sales. La lista es ordenada para
// que la factura sea determinista línea a línea.
type RegisterSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method,omitempty"`
}

// SaleLineResponse línea de la venta con su subtotal calculado.
type SaleLineResponse struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada. TaxTotal y GrandTotal solo difieren de
// NetTotal cuando la tasa de impuesto configurada es mayor que cero.
type SaleResponse struct {
	SaleID        int                `json:"sale_id"`
	Date          string             `json:"date"`
	Lines         []SaleLineResponse `json:"lines"`
	NetTotal      decimal.Decimal    `json:"net_total"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	TaxTotal      decimal.Decimal    `json:"tax_total"`
	GrandTotal    decimal.Decimal    `json:"grand_total"`
	PaymentMethod string             `json:"payment_method"`
	InvoiceRef    string             `json:"invoice_ref"`
}

// SaleListItem fila del listado de ventas. ArtifactMissing marca las ventas
// cuya factura ya no existe en disco; el listado no se aborta por eso.
type SaleListItem struct {
	SaleID          int             `json:"sale_id"`
	Date            string          `json:"date"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	InvoiceRef      string          `json:"invoice_ref"`
	ArtifactMissing bool            `json:"artifact_missing"`
	Warning         string          `json:"warning,omitempty"`
}
