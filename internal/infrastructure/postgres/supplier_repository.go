package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List devuelve todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT supplier_id, name, address, phone, email FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.Address, &s.Phone, &s.Email); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// GetByID obtiene un proveedor por id.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT supplier_id, name, address, phone, email FROM suppliers WHERE supplier_id = $1`,
		id,
	).Scan(&s.SupplierID, &s.Name, &s.Address, &s.Phone, &s.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Create inserta el proveedor. Id duplicado = domain.ErrDuplicate.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO suppliers (supplier_id, name, address, phone, email) VALUES ($1, $2, $3, $4, $5)`,
		supplier.SupplierID, supplier.Name, supplier.Address, supplier.Phone, supplier.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update actualiza los datos de contacto de un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, address = $3, phone = $4, email = $5 WHERE supplier_id = $1`,
		supplier.SupplierID, supplier.Name, supplier.Address, supplier.Phone, supplier.Email,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
