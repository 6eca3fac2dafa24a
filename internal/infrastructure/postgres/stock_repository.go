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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para stock.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// List devuelve el inventario ordenado por stock_id.
func (r *StockRepo) List() ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT stock_id, product_id, quantity, description, price FROM stock ORDER BY stock_id`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.StockID, &it.ProductID, &it.Quantity, &it.Description, &it.Price); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// GetByProductID obtiene un producto por su código.
func (r *StockRepo) GetByProductID(productID string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := r.q.QueryRow(context.Background(),
		`SELECT stock_id, product_id, quantity, description, price FROM stock WHERE product_id = $1`,
		productID,
	).Scan(&it.StockID, &it.ProductID, &it.Quantity, &it.Description, &it.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &it, nil
}

// Create inserta el producto. product_id duplicado = domain.ErrDuplicate.
func (r *StockRepo) Create(item *entity.StockItem) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO stock (stock_id, product_id, quantity, description, price) VALUES ($1, $2, $3, $4, $5)`,
		item.StockID, item.ProductID, item.Quantity, item.Description, item.Price,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update actualiza cantidad, descripción y precio por stock_id.
func (r *StockRepo) Update(item *entity.StockItem) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock SET quantity = $2, description = $3, price = $4 WHERE stock_id = $1`,
		item.StockID, item.Quantity, item.Description, item.Price,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
