package csvstore

import (
	"errors"
	"fmt"

	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

const supplierCollection = "suppliers"

var supplierHeader = []string{"supplier_id", "name", "address", "phone", "email"}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre el store CSV.
type SupplierRepo struct {
	store *Store
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(store *Store) *SupplierRepo {
	return &SupplierRepo{store: store}
}

// List carga todos los proveedores. Archivo ausente = vacío + ErrMissingFile.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.store.Load(supplierCollection)
	if err != nil {
		return nil, err
	}
	suppliers := make([]*entity.Supplier, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(supplierHeader) {
			return nil, fmt.Errorf("fila de proveedor con %d campos, se esperaban %d", len(row), len(supplierHeader))
		}
		suppliers = append(suppliers, &entity.Supplier{
			SupplierID: row[0],
			Name:       row[1],
			Address:    row[2],
			Phone:      row[3],
			Email:      row[4],
		})
	}
	return suppliers, nil
}

// GetByID busca un proveedor por id.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	suppliers, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, err
	}
	for _, s := range suppliers {
		if s.SupplierID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create agrega el proveedor y reescribe la colección completa.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	suppliers, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	suppliers = append(suppliers, supplier)
	return r.saveAll(suppliers)
}

// Update reemplaza el registro con el mismo id y reescribe todo.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	suppliers, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	replaced := false
	for i, s := range suppliers {
		if s.SupplierID == supplier.SupplierID {
			suppliers[i] = supplier
			replaced = true
			break
		}
	}
	if !replaced {
		return domain.ErrNotFound
	}
	return r.saveAll(suppliers)
}

func (r *SupplierRepo) saveAll(suppliers []*entity.Supplier) error {
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{s.SupplierID, s.Name, s.Address, s.Phone, s.Email})
	}
	return r.store.Save(supplierCollection, supplierHeader, rows)
}
