package usecase

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

// StockUseCase gestiona el inventario de la tienda (pantalla de stock).
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create da de alta un producto. El stock_id es secuencial (max+1) y el
// product_id debe ser único en la colección: los duplicados se rechazan aquí
// para que el lookup de venta nunca sea ambiguo.
func (uc *StockUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.ProductID == "" || in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.repo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar stock: %w", err)
	}
	maxID := 0
	for _, it := range items {
		if it.ProductID == in.ProductID {
			return nil, domain.ErrDuplicate
		}
		if it.StockID > maxID {
			maxID = it.StockID
		}
	}

	item := &entity.StockItem{
		StockID:     maxID + 1,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toStockResponse(item), nil
}

// List devuelve el inventario completo. Si el archivo de respaldo no existe
// retorna la lista vacía junto con domain.ErrMissingFile para que el handler
// lo reporte sin abortar.
func (uc *StockUseCase) List() ([]dto.StockItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar stock: %w", err)
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toStockResponse(it))
	}
	return out, err
}

// GetByProductID obtiene un producto por su código.
func (uc *StockUseCase) GetByProductID(productID string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	return toStockResponse(item), nil
}

// Update modifica cantidad, descripción y precio de un producto existente.
// La colección completa se reescribe (reemplazo total, no append).
func (uc *StockUseCase) Update(productID string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	item.Quantity = in.Quantity
	item.Description = in.Description
	item.Price = in.Price
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toStockResponse(item), nil
}

func toStockResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		StockID:     item.StockID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		Description: item.Description,
		Price:       item.Price,
	}
}
