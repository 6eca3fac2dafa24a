package repository

import "github.com/jdrojas/plomeria-pos/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	List() ([]*entity.Supplier, error)
	GetByID(id string) (*entity.Supplier, error)
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
}
