package csvstore

import (
	"errors"
	"fmt"

	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

const purchaseCollection = "purchases"

var purchaseHeader = []string{"purchase_id", "supplier_id", "products", "date", "total"}

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre el store CSV.
type PurchaseRepo struct {
	store *Store
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(store *Store) *PurchaseRepo {
	return &PurchaseRepo{store: store}
}

// List carga todas las compras. Archivo ausente = vacío + ErrMissingFile.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	rows, err := r.store.Load(purchaseCollection)
	if err != nil {
		return nil, err
	}
	purchases := make([]*entity.Purchase, 0, len(rows))
	for _, row := range rows {
		p, err := decodePurchase(row)
		if err != nil {
			return nil, fmt.Errorf("colección %s: %w", purchaseCollection, err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// Append agrega la compra al final y reescribe la colección completa.
func (r *PurchaseRepo) Append(purchase *entity.Purchase) error {
	purchases, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	purchases = append(purchases, purchase)

	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, encodePurchase(p))
	}
	return r.store.Save(purchaseCollection, purchaseHeader, rows)
}

func encodePurchase(p *entity.Purchase) []string {
	return []string{
		fmt.Sprintf("%d", p.PurchaseID),
		p.SupplierID,
		encodePurchaseLines(p.Products),
		p.Date.Format(dateLayout),
		p.Total.String(),
	}
}

func decodePurchase(row []string) (*entity.Purchase, error) {
	if len(row) != len(purchaseHeader) {
		return nil, fmt.Errorf("fila de compra con %d campos, se esperaban %d", len(row), len(purchaseHeader))
	}
	id, err := parseInt("purchase_id", row[0])
	if err != nil {
		return nil, err
	}
	lines, err := decodePurchaseLines(row[2])
	if err != nil {
		return nil, err
	}
	date, err := parseDate("date", row[3])
	if err != nil {
		return nil, err
	}
	total, err := parseDecimal("total", row[4])
	if err != nil {
		return nil, err
	}
	return &entity.Purchase{
		PurchaseID: id,
		SupplierID: row[1],
		Products:   lines,
		Date:       date,
		Total:      total,
	}, nil
}
