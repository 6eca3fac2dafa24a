package repository

import "github.com/jdrojas/plomeria-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Append carga la colección, agrega el registro y reescribe el archivo
// completo (en el backend CSV); debe invocarse solo después de que el
// renderer haya escrito el artefacto referenciado en InvoiceRef.
type SaleRepository interface {
	List() ([]*entity.Sale, error)
	GetByID(id int) (*entity.Sale, error)
	Append(sale *entity.Sale) error
}
