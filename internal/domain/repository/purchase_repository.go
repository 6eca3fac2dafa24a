package repository

import "github.com/jdrojas/plomeria-pos/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
// Las compras son append-only: no hay update ni delete.
type PurchaseRepository interface {
	List() ([]*entity.Purchase, error)
	Append(purchase *entity.Purchase) error
}
