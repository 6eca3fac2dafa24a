package repository

import "github.com/jdrojas/plomeria-pos/internal/domain/entity"

// StockRepository define el puerto de persistencia para StockItem (DIP).
// List puede devolver la colección vacía junto con domain.ErrMissingFile
// cuando el archivo de respaldo no existe (modo degradado).
type StockRepository interface {
	List() ([]*entity.StockItem, error)
	GetByProductID(productID string) (*entity.StockItem, error)
	Create(item *entity.StockItem) error
	Update(item *entity.StockItem) error
}
