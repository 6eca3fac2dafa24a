package csvstore

import (
	"errors"
	"fmt"

	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

const stockCollection = "stock"

var stockHeader = []string{"stock_id", "product_id", "quantity", "description", "price"}

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre el store CSV.
type StockRepo struct {
	store *Store
}

// NewStockRepository construye el adaptador de persistencia para stock.
func NewStockRepository(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

// List carga el inventario completo. Archivo ausente = vacío + ErrMissingFile.
func (r *StockRepo) List() ([]*entity.StockItem, error) {
	rows, err := r.store.Load(stockCollection)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.StockItem, 0, len(rows))
	for _, row := range rows {
		item, err := decodeStockItem(row)
		if err != nil {
			return nil, fmt.Errorf("colección %s: %w", stockCollection, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByProductID busca por código de producto. Ante duplicados preexistentes
// en el archivo gana el menor stock_id (mismo desempate que el catálogo).
func (r *StockRepo) GetByProductID(productID string) (*entity.StockItem, error) {
	items, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, err
	}
	var found *entity.StockItem
	for _, it := range items {
		if it.ProductID != productID {
			continue
		}
		if found == nil || it.StockID < found.StockID {
			found = it
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

// Create agrega el producto y reescribe la colección completa.
func (r *StockRepo) Create(item *entity.StockItem) error {
	items, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	items = append(items, item)
	return r.saveAll(items)
}

// Update reemplaza el registro con el mismo stock_id y reescribe todo.
func (r *StockRepo) Update(item *entity.StockItem) error {
	items, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	replaced := false
	for i, it := range items {
		if it.StockID == item.StockID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		return domain.ErrNotFound
	}
	return r.saveAll(items)
}

func (r *StockRepo) saveAll(items []*entity.StockItem) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, encodeStockItem(it))
	}
	return r.store.Save(stockCollection, stockHeader, rows)
}

func encodeStockItem(it *entity.StockItem) []string {
	return []string{
		fmt.Sprintf("%d", it.StockID),
		it.ProductID,
		fmt.Sprintf("%d", it.Quantity),
		it.Description,
		it.Price.String(),
	}
}

func decodeStockItem(row []string) (*entity.StockItem, error) {
	if len(row) != len(stockHeader) {
		return nil, fmt.Errorf("fila de stock con %d campos, se esperaban %d", len(row), len(stockHeader))
	}
	stockID, err := parseInt("stock_id", row[0])
	if err != nil {
		return nil, err
	}
	qty, err := parseInt("quantity", row[2])
	if err != nil {
		return nil, err
	}
	price, err := parseDecimal("price", row[4])
	if err != nil {
		return nil, err
	}
	return &entity.StockItem{
		StockID:     stockID,
		ProductID:   row[1],
		Quantity:    qty,
		Description: row[3],
		Price:       price,
	}, nil
}
