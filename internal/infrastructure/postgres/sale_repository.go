package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Cabecera y líneas se insertan en una sola transacción.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// List devuelve todas las ventas con sus líneas, ordenadas por id.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT sale_id, date, total, payment_method, invoice_ref FROM sales ORDER BY sale_id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	byID := make(map[int]*entity.Sale)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.SaleID, &s.Date, &s.Total, &s.PaymentMethod, &s.InvoiceRef); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
		byID[s.SaleID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.pool.Query(ctx,
		`SELECT sale_id, product_id, quantity FROM sale_lines ORDER BY sale_id`)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var saleID int
		var line entity.SaleLine
		if err := lineRows.Scan(&saleID, &line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Products = append(s.Products, line)
		}
	}
	return sales, lineRows.Err()
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id int) (*entity.Sale, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.pool.QueryRow(ctx,
		`SELECT sale_id, date, total, payment_method, invoice_ref FROM sales WHERE sale_id = $1`, id,
	).Scan(&s.SaleID, &s.Date, &s.Total, &s.PaymentMethod, &s.InvoiceRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, quantity FROM sale_lines WHERE sale_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get sale lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.SaleLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		s.Products = append(s.Products, line)
	}
	return &s, rows.Err()
}

// Append inserta cabecera y líneas; rollback si cualquier insert falla.
func (r *SaleRepo) Append(sale *entity.Sale) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (sale_id, date, total, payment_method, invoice_ref) VALUES ($1, $2, $3, $4, $5)`,
		sale.SaleID, sale.Date, sale.Total, sale.PaymentMethod, sale.InvoiceRef,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, line := range sale.Products {
		if _, err := tx.Exec(ctx,
			`INSERT INTO sale_lines (sale_id, product_id, quantity) VALUES ($1, $2, $3)`,
			sale.SaleID, line.ProductID, line.Quantity,
		); err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
