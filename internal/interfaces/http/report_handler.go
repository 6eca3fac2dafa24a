package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/application/reports"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler sirve los reportes XLSX descargables.
type ReportHandler struct {
	uc *reports.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesReport godoc
// @Summary      Reporte de ventas en Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/sales.xlsx [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	book, err := h.uc.SalesXLSX()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.xlsx"`)
	return c.Send(book)
}

// StockReport godoc
// @Summary      Reporte de inventario en Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/stock.xlsx [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	book, err := h.uc.StockXLSX()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	return c.Send(book)
}
