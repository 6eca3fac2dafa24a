// Package reports exporta colecciones a libros Excel descargables.
package reports

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/jdrojas/plomeria-pos/internal/domain"
	"github.com/jdrojas/plomeria-pos/internal/domain/repository"
)

// ExportUseCase genera reportes XLSX de ventas y de stock.
type ExportUseCase struct {
	stockRepo repository.StockRepository
	saleRepo  repository.SaleRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(stockRepo repository.StockRepository, saleRepo repository.SaleRepository) *ExportUseCase {
	return &ExportUseCase{stockRepo: stockRepo, saleRepo: saleRepo}
}

// SalesXLSX arma el libro de ventas: una fila por venta con fecha, total,
// método de pago y referencia de factura.
func (uc *ExportUseCase) SalesXLSX() ([]byte, error) {
	sales, err := uc.saleRepo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar ventas: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"sale_id", "fecha", "productos", "total", "metodo_pago", "factura"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("reporte de ventas: cabecera: %w", err)
	}

	row := 2
	for _, s := range sales {
		products := ""
		for i, l := range s.Products {
			if i > 0 {
				products += "; "
			}
			products += fmt.Sprintf("%s x%d", l.ProductID, l.Quantity)
		}
		excelRow := []interface{}{
			s.SaleID,
			s.Date.Format("2006-01-02"),
			products,
			s.Total.StringFixed(2),
			s.PaymentMethod,
			s.InvoiceRef,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("reporte de ventas: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("reporte de ventas: fila: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("reporte de ventas: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// StockXLSX arma el libro de inventario: una fila por producto.
func (uc *ExportUseCase) StockXLSX() ([]byte, error) {
	items, err := uc.stockRepo.List()
	if err != nil && !errors.Is(err, domain.ErrMissingFile) {
		return nil, fmt.Errorf("cargar stock: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"stock_id", "product_id", "descripcion", "cantidad", "precio"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("reporte de stock: cabecera: %w", err)
	}

	row := 2
	for _, it := range items {
		excelRow := []interface{}{
			it.StockID,
			it.ProductID,
			it.Description,
			it.Quantity,
			it.Price.StringFixed(2),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("reporte de stock: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("reporte de stock: fila: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("reporte de stock: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
