package dto

import "github.com/shopspring/decimal"

// PurchaseItemRequest línea de compra (producto, cantidad, costo unitario).
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest body para POST /api/purchases.
// Date opcional en formato 2006-01-02; si va vacía se usa la fecha actual.
type CreatePurchaseRequest struct {
	SupplierID string                `json:"supplier_id" validate:"required"`
	Items      []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Date       string                `json:"date,omitempty"`
}

// PurchaseLineResponse línea de compra en respuestas.
type PurchaseLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// PurchaseResponse compra en respuestas.
type PurchaseResponse struct {
	PurchaseID int                    `json:"purchase_id"`
	SupplierID string                 `json:"supplier_id"`
	Items      []PurchaseLineResponse `json:"items"`
	Date       string                 `json:"date"`
	Total      decimal.Decimal        `json:"total"`
}
