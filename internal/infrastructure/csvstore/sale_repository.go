package csvstore

import (
	"errors"
	"fmt"

	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

const saleCollection = "sales"

var saleHeader = []string{"sale_id", "date", "products", "total", "payment_method", "invoice_ref"}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre el store CSV.
type SaleRepo struct {
	store *Store
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// List carga todas las ventas. Archivo ausente = vacío + ErrMissingFile.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	rows, err := r.store.Load(saleCollection)
	if err != nil {
		return nil, err
	}
	sales := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		s, err := decodeSale(row)
		if err != nil {
			return nil, fmt.Errorf("colección %s: %w", saleCollection, err)
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// GetByID busca una venta por id.
func (r *SaleRepo) GetByID(id int) (*entity.Sale, error) {
	sales, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, err
	}
	for _, s := range sales {
		if s.SaleID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Append agrega la venta al final y reescribe la colección completa.
// El caller debe haber completado InvoiceRef con un artefacto ya escrito.
func (r *SaleRepo) Append(sale *entity.Sale) error {
	sales, err := r.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	sales = append(sales, sale)

	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, encodeSale(s))
	}
	return r.store.Save(saleCollection, saleHeader, rows)
}

func encodeSale(s *entity.Sale) []string {
	return []string{
		fmt.Sprintf("%d", s.SaleID),
		s.Date.Format(dateLayout),
		encodeSaleLines(s.Products),
		s.Total.String(),
		s.PaymentMethod,
		s.InvoiceRef,
	}
}

func decodeSale(row []string) (*entity.Sale, error) {
	if len(row) != len(saleHeader) {
		return nil, fmt.Errorf("fila de venta con %d campos, se esperaban %d", len(row), len(saleHeader))
	}
	id, err := parseInt("sale_id", row[0])
	if err != nil {
		return nil, err
	}
	date, err := parseDate("date", row[1])
	if err != nil {
		return nil, err
	}
	lines, err := decodeSaleLines(row[2])
	if err != nil {
		return nil, err
	}
	total, err := parseDecimal("total", row[3])
	if err != nil {
		return nil, err
	}
	return &entity.Sale{
		SaleID:        id,
		Date:          date,
		Products:      lines,
		Total:         total,
		PaymentMethod: row[4],
		InvoiceRef:    row[5],
	}, nil
}
