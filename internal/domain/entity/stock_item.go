package entity

import "github.com/shopspring/decimal"

// StockItem representa un producto del inventario de la tienda.
// La cantidad no se descuenta al vender: el stock se gestiona solo desde la
// pantalla de stock (comportamiento heredado).
type StockItem struct {
	StockID     int
	ProductID   string // código del producto, único en la colección
	Quantity    int
	Description string
	Price       decimal.Decimal // precio unitario de venta
}
