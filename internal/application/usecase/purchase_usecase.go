package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

// PurchaseUseCase gestiona las compras a proveedores. Append-only: una compra
// registrada no se edita ni se borra. Las compras no incrementan el stock
// (simetría con la venta, que tampoco lo descuenta).
type PurchaseUseCase struct {
	repo repository.PurchaseRepository
	now  func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, now: time.Now}
}

// Create registra una compra. El id es secuencial (max+1) y el total se
// calcula como Σ cantidad × costo unitario. No se valida que el proveedor
// exista: la colección de proveedores es independiente.
func (uc *PurchaseUseCase) Create(in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	date := uc.now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	lines := make([]entity.PurchaseLine, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.PurchaseLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	existing, err := uc.repo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar compras: %w", err)
	}
	maxID := 0
	for _, p := range existing {
		if p.PurchaseID > maxID {
			maxID = p.PurchaseID
		}
	}

	purchase := &entity.Purchase{
		PurchaseID: maxID + 1,
		SupplierID: in.SupplierID,
		Products:   lines,
		Date:       date,
		Total:      total,
	}
	if err := uc.repo.Append(purchase); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// List devuelve todas las compras (vacío + ErrMissingFile en degradado).
func (uc *PurchaseUseCase) List() ([]dto.PurchaseResponse, error) {
	purchases, err := uc.repo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar compras: %w", err)
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, err
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		PurchaseID: p.PurchaseID,
		SupplierID: p.SupplierID,
		Items:      make([]dto.PurchaseLineResponse, 0, len(p.Products)),
		Date:       p.Date.Format("2006-01-02"),
		Total:      p.Total,
	}
	for _, l := range p.Products {
		resp.Items = append(resp.Items, dto.PurchaseLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
		})
	}
	return resp
}
