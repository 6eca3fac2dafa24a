package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/domain"
)

// SalesHandler maneja el registro de ventas y la descarga de facturas.
type SalesHandler struct {
	uc *sales.RegisterSaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.RegisterSaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta
// @Description  Construye la venta, genera la factura y la persiste, en ese orden.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "Productos vendidos"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if resp := validationError(in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la venta no tiene productos"})
		case errors.Is(err, domain.ErrUnknownProduct):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PRODUCT", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		case errors.Is(err, domain.ErrRender):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: "no se pudo generar la factura"})
		case errors.Is(err, domain.ErrPersist):
			// La factura quedó en disco pero la venta no. Se reporta la ruta
			// huérfana en el detalle, nunca se oculta.
			resp := dto.ErrorResponse{Code: "PERSIST", Message: "la factura fue generada pero la venta no quedó registrada"}
			var persistErr *sales.PersistError
			if errors.As(err, &persistErr) {
				resp.Detail = persistErr.ArtifactPath
			}
			return c.Status(fiber.StatusInternalServerError).JSON(resp)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Cada fila indica si su factura sigue existiendo en disco.
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleListItem
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por id
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleListItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de venta inválido"})
	}
	out, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrMissingFile) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadInvoice godoc
// @Summary      Descargar factura de una venta
// @Tags         sales
// @Produce      application/octet-stream
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/invoice [get]
func (h *SalesHandler) DownloadInvoice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de venta inválido"})
	}
	path, err := h.uc.InvoicePath(id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrMissingFile):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		case errors.Is(err, domain.ErrMissingArtifact):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MISSING_ARTIFACT", Message: "la factura referenciada no existe en disco"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Download(path)
}
