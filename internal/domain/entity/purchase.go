package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLine una línea de compra a proveedor (producto, cantidad y costo unitario).
type PurchaseLine struct {
	ProductID string
	Quantity  int
	UnitCost  decimal.Decimal
}

// Purchase representa una compra a proveedor. Append-only.
type Purchase struct {
	PurchaseID int
	SupplierID string
	Products   []PurchaseLine
	Date       time.Time
	Total      decimal.Decimal
}
