package dto

import "github.com/shopspring/decimal"

// CreateStockItemRequest body para POST /api/stock.
type CreateStockItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateStockItemRequest body para PUT /api/stock/:productId.
type UpdateStockItemRequest struct {
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// StockItemResponse producto de inventario en respuestas.
type StockItemResponse struct {
	StockID     int             `json:"stock_id"`
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
