package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCash único método de pago del flujo observado.
const PaymentCash = "efectivo"

// SaleLine referencia de producto vendido con su cantidad.
type SaleLine struct {
	ProductID string
	Quantity  int
}

// Sale representa una venta registrada. Append-only.
//
// Total es la suma de subtotales ANTES de impuesto; el impuesto y el total
// con impuesto viven en la factura. InvoiceRef apunta a un artefacto que
// existe al momento del registro: el renderer escribe primero y el persister
// guarda después (invariante de orden del flujo de venta).
type Sale struct {
	SaleID        int // secuencial: max(existentes)+1, arranca en 1
	Date          time.Time
	Products      []SaleLine
	Total         decimal.Decimal
	PaymentMethod string
	InvoiceRef    string // ruta del artefacto, ej. facturas/factura_1.txt
}
