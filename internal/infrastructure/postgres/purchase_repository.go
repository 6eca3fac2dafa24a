package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

// List devuelve todas las compras con sus líneas, ordenadas por id.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT purchase_id, supplier_id, date, total FROM purchases ORDER BY purchase_id`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.Purchase
	byID := make(map[int]*entity.Purchase)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.PurchaseID, &p.SupplierID, &p.Date, &p.Total); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
		byID[p.PurchaseID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.pool.Query(ctx,
		`SELECT purchase_id, product_id, quantity, unit_cost FROM purchase_lines ORDER BY purchase_id`)
	if err != nil {
		return nil, fmt.Errorf("list purchase lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var purchaseID int
		var line entity.PurchaseLine
		if err := lineRows.Scan(&purchaseID, &line.ProductID, &line.Quantity, &line.UnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		if p, ok := byID[purchaseID]; ok {
			p.Products = append(p.Products, line)
		}
	}
	return purchases, lineRows.Err()
}

// Append inserta cabecera y líneas; rollback si cualquier insert falla.
func (r *PurchaseRepo) Append(purchase *entity.Purchase) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO purchases (purchase_id, supplier_id, date, total) VALUES ($1, $2, $3, $4)`,
		purchase.PurchaseID, purchase.SupplierID, purchase.Date, purchase.Total,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, line := range purchase.Products {
		if _, err := tx.Exec(ctx,
			`INSERT INTO purchase_lines (purchase_id, product_id, quantity, unit_cost) VALUES ($1, $2, $3, $4)`,
			purchase.PurchaseID, line.ProductID, line.Quantity, line.UnitCost,
		); err != nil {
			return fmt.Errorf("insert purchase line: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
