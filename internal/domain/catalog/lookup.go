// Package catalog resuelve códigos de producto contra la colección de stock.
package catalog

import (
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
)

// FindProduct busca productID en stock y devuelve su StockItem.
//
// Si hay más de un registro con el mismo código (datos preexistentes en el
// archivo; el alta de stock los rechaza), gana el de menor StockID para que
// el resultado sea determinista. Retorna domain.ErrUnknownProduct si no hay
// ninguno.
func FindProduct(productID string, stock []*entity.StockItem) (*entity.StockItem, error) {
	var found *entity.StockItem
	for _, item := range stock {
		if item.ProductID != productID {
			continue
		}
		if found == nil || item.StockID < found.StockID {
			found = item
		}
	}
	if found == nil {
		return nil, domain.ErrUnknownProduct
	}
	return found, nil
}
