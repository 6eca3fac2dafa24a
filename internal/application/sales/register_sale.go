package sales

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/entity"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
	"github.com/jdrojas/plomeria-pos/pkg/metrics"
)

// PersistError se produce cuando la factura ya fue escrita pero la venta no
// pudo guardarse. El estado es inconsistente a propósito: no hay rollback del
// artefacto, y el caller debe mostrarlo, no ocultarlo.
type PersistError struct {
	ArtifactPath string
	Err          error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("la factura %s fue generada pero la venta no quedó registrada: %v", e.ArtifactPath, e.Err)
}

// Unwrap permite errors.Is(err, domain.ErrPersist).
func (e *PersistError) Unwrap() error { return domain.ErrPersist }

// RegisterSaleUseCase orquesta el flujo de venta: construir → renderizar →
// persistir, en ese orden estricto.
type RegisterSaleUseCase struct {
	stockRepo repository.StockRepository
	saleRepo  repository.SaleRepository
	renderer  InvoiceRenderer
	taxRate   decimal.Decimal
	now       func() time.Time
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	renderer InvoiceRenderer,
	taxRate decimal.Decimal,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		stockRepo: stockRepo,
		saleRepo:  saleRepo,
		renderer:  renderer,
		taxRate:   taxRate,
		now:       time.Now,
	}
}

// Register registra una venta completa.
//
//  1. Carga stock y ventas existentes (colección ausente = vacía, degradado).
//  2. BuildSale calcula líneas, totales y el siguiente id.
//  3. El renderer escribe la factura; si falla, se aborta sin persistir.
//  4. La ruta del artefacto se copia en InvoiceRef y se hace Append.
//     Si el Append falla se retorna PersistError con la ruta ya generada.
func (uc *RegisterSaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	stock, err := uc.stockRepo.List()
	if err != nil {
		if !errors.Is(err, domain.ErrMissingFile) {
			return nil, fmt.Errorf("cargar stock: %w", err)
		}
		log.Warn().Msg("colección de stock ausente, se continúa con stock vacío")
	}
	existing, err := uc.saleRepo.List()
	if err != nil {
		if !errors.Is(err, domain.ErrMissingFile) {
			return nil, fmt.Errorf("cargar ventas: %w", err)
		}
		log.Warn().Msg("colección de ventas ausente, la venta arrancará en el id 1")
	}

	selections := make([]Selection, 0, len(in.Items))
	for _, item := range in.Items {
		selections = append(selections, Selection{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	sale, lines, totals, err := BuildSale(selections, stock, existing, uc.taxRate, uc.now())
	if err != nil {
		return nil, err
	}
	if in.PaymentMethod != "" {
		sale.PaymentMethod = in.PaymentMethod
	}

	artifactPath, err := uc.renderer.Render(ctx, sale, lines, totals)
	if err != nil {
		metrics.ErroresRender.Inc()
		return nil, err
	}

	sale.InvoiceRef = artifactPath
	if err := uc.saleRepo.Append(sale); err != nil {
		metrics.ErroresPersistencia.Inc()
		return nil, &PersistError{ArtifactPath: artifactPath, Err: err}
	}
	metrics.VentasRegistradas.Inc()

	log.Info().
		Int("venta", sale.SaleID).
		Str("factura", artifactPath).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta registrada")

	return uc.toResponse(sale, lines, totals), nil
}

// List devuelve las ventas con la verificación por fila del artefacto.
// Una factura ausente marca la fila con una advertencia pero no aborta el
// listado de las demás.
func (uc *RegisterSaleUseCase) List() ([]dto.SaleListItem, error) {
	sales, err := uc.saleRepo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar ventas: %w", err)
	}

	items := make([]dto.SaleListItem, 0, len(sales))
	for _, s := range sales {
		item := dto.SaleListItem{
			SaleID:        s.SaleID,
			Date:          s.Date.Format("2006-01-02"),
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
			InvoiceRef:    s.InvoiceRef,
		}
		if _, statErr := os.Stat(s.InvoiceRef); statErr != nil {
			item.ArtifactMissing = true
			item.Warning = "la factura referenciada no existe en disco"
		}
		items = append(items, item)
	}
	return items, nil
}

// Get devuelve una venta por id, con el mismo chequeo de artefacto que el
// listado.
func (uc *RegisterSaleUseCase) Get(saleID int) (*dto.SaleListItem, error) {
	s, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	item := dto.SaleListItem{
		SaleID:        s.SaleID,
		Date:          s.Date.Format("2006-01-02"),
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		InvoiceRef:    s.InvoiceRef,
	}
	if _, statErr := os.Stat(s.InvoiceRef); statErr != nil {
		item.ArtifactMissing = true
		item.Warning = "la factura referenciada no existe en disco"
	}
	return &item, nil
}

// InvoicePath devuelve la ruta del artefacto de una venta, validando que
// exista. Retorna domain.ErrMissingArtifact si el archivo ya no está.
func (uc *RegisterSaleUseCase) InvoicePath(saleID int) (string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(sale.InvoiceRef); err != nil {
		return "", domain.ErrMissingArtifact
	}
	return sale.InvoiceRef, nil
}

func (uc *RegisterSaleUseCase) toResponse(sale *entity.Sale, lines []LineItem, totals Totals) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		SaleID:        sale.SaleID,
		Date:          sale.Date.Format("2006-01-02"),
		Lines:         make([]dto.SaleLineResponse, 0, len(lines)),
		NetTotal:      totals.NetTotal,
		TaxRate:       totals.TaxRate,
		TaxTotal:      totals.TaxTotal,
		GrandTotal:    totals.GrandTotal,
		PaymentMethod: sale.PaymentMethod,
		InvoiceRef:    sale.InvoiceRef,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return resp
}
