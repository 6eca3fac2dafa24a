package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/internal/application/reports"
	"github.com/jdrojas/plomeria-pos/internal/application/sales"
	"github.com/jdrojas/plomeria-pos/internal/application/usecase"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/csvstore"
	"github.com/jdrojas/plomeria-pos/internal/infrastructure/render"
	httpRouter "github.com/jdrojas/plomeria-pos/internal/interfaces/http"
)

// newTestApp arma la aplicación completa con respaldo CSV y facturas de texto
// en directorios temporales.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := csvstore.New(t.TempDir())
	stockRepo := csvstore.NewStockRepository(store)
	supplierRepo := csvstore.NewSupplierRepository(store)
	purchaseRepo := csvstore.NewPurchaseRepository(store)
	saleRepo := csvstore.NewSaleRepository(store)
	renderer := render.NewTextRenderer(t.TempDir(), "Plomería El Tornillo")

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:      usecase.NewStockUseCase(stockRepo),
		SupplierUC:   usecase.NewSupplierUseCase(supplierRepo),
		PurchaseUC:   usecase.NewPurchaseUseCase(purchaseRepo),
		RegisterSale: sales.NewRegisterSaleUseCase(stockRepo, saleRepo, renderer, decimal.Zero),
		ExportUC:     reports.NewExportUseCase(stockRepo, saleRepo),
	})
	return app
}

type testResponse struct {
	Code int
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (testResponse, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testResponse{Code: resp.StatusCode}, raw
}

func crearProducto(t *testing.T, app *fiber.App) {
	t.Helper()
	rec, _ := doJSON(t, app, "POST", "/api/stock",
		`{"product_id":"P1","quantity":20,"description":"Grifo monomando","price":"10.00"}`)
	require.Equal(t, fiber.StatusCreated, rec.Code)
}

func TestStockEndpoints(t *testing.T) {
	app := newTestApp(t)

	// Colección ausente: lista vacía, no un error.
	rec, raw := doJSON(t, app, "GET", "/api/stock", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))

	crearProducto(t, app)

	// product_id duplicado se rechaza.
	rec, raw = doJSON(t, app, "POST", "/api/stock",
		`{"product_id":"P1","quantity":5,"description":"Otro grifo","price":"12.00"}`)
	require.Equal(t, fiber.StatusConflict, rec.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "DUPLICATE", errResp.Code)

	rec, raw = doJSON(t, app, "GET", "/api/stock/P1", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	var item dto.StockItemResponse
	require.NoError(t, json.Unmarshal(raw, &item))
	assert.Equal(t, 1, item.StockID)
	assert.Equal(t, "Grifo monomando", item.Description)

	rec, _ = doJSON(t, app, "GET", "/api/stock/P9", "")
	require.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestRegistrarVentaEndToEnd(t *testing.T) {
	app := newTestApp(t)
	crearProducto(t, app)

	rec, raw := doJSON(t, app, "POST", "/api/sales",
		`{"items":[{"product_id":"P1","quantity":3}]}`)
	require.Equal(t, fiber.StatusCreated, rec.Code, string(raw))

	var sale dto.SaleResponse
	require.NoError(t, json.Unmarshal(raw, &sale))
	assert.Equal(t, 1, sale.SaleID)
	assert.Equal(t, "30.00", sale.NetTotal.StringFixed(2))
	assert.NotEmpty(t, sale.InvoiceRef)

	// El listado refleja la venta y su factura existe en disco.
	rec, raw = doJSON(t, app, "GET", "/api/sales", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	var list []dto.SaleListItem
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.False(t, list[0].ArtifactMissing)

	// Detalle individual.
	rec, raw = doJSON(t, app, "GET", "/api/sales/1", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	var detalle dto.SaleListItem
	require.NoError(t, json.Unmarshal(raw, &detalle))
	assert.False(t, detalle.ArtifactMissing)

	// Y se puede descargar.
	rec, raw = doJSON(t, app, "GET", "/api/sales/1/invoice", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	assert.Contains(t, string(raw), "FACTURA N° 1")
}

func TestRegistrarVenta_Errores(t *testing.T) {
	app := newTestApp(t)
	crearProducto(t, app)

	// Producto desconocido.
	rec, raw := doJSON(t, app, "POST", "/api/sales",
		`{"items":[{"product_id":"P9","quantity":1}]}`)
	require.Equal(t, fiber.StatusNotFound, rec.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "UNKNOWN_PRODUCT", errResp.Code)

	// Cantidad mayor al stock.
	rec, raw = doJSON(t, app, "POST", "/api/sales",
		`{"items":[{"product_id":"P1","quantity":21}]}`)
	require.Equal(t, fiber.StatusConflict, rec.Code)
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)

	// Venta sin productos.
	rec, _ = doJSON(t, app, "POST", "/api/sales", `{"items":[]}`)
	require.Equal(t, fiber.StatusBadRequest, rec.Code)

	// Factura de una venta inexistente.
	rec, raw = doJSON(t, app, "GET", "/api/sales/99/invoice", "")
	require.Equal(t, fiber.StatusNotFound, rec.Code)
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestProveedoresYCompras(t *testing.T) {
	app := newTestApp(t)

	rec, raw := doJSON(t, app, "POST", "/api/suppliers",
		`{"name":"Distribuidora Hidrotec","phone":"3104567890"}`)
	require.Equal(t, fiber.StatusCreated, rec.Code)
	var supplier dto.SupplierResponse
	require.NoError(t, json.Unmarshal(raw, &supplier))
	assert.NotEmpty(t, supplier.SupplierID, "sin id en el request se genera un UUID")

	rec, raw = doJSON(t, app, "POST", "/api/purchases",
		`{"supplier_id":"`+supplier.SupplierID+`","items":[{"product_id":"P1","quantity":10,"unit_cost":"7.50"}]}`)
	require.Equal(t, fiber.StatusCreated, rec.Code, string(raw))
	var purchase dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &purchase))
	assert.Equal(t, "75.00", purchase.Total.StringFixed(2))

	// Proveedor sin nombre se rechaza en la validación del request.
	rec, _ = doJSON(t, app, "POST", "/api/suppliers", `{"phone":"300"}`)
	require.Equal(t, fiber.StatusBadRequest, rec.Code)
}

func TestReportesXLSX(t *testing.T) {
	app := newTestApp(t)
	crearProducto(t, app)

	rec, raw := doJSON(t, app, "GET", "/api/reports/stock.xlsx", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	// Un XLSX es un ZIP: los dos primeros bytes son "PK".
	require.Greater(t, len(raw), 2)
	assert.Equal(t, "PK", string(raw[:2]))

	rec, raw = doJSON(t, app, "GET", "/api/reports/sales.xlsx", "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	require.Greater(t, len(raw), 2)
	assert.Equal(t, "PK", string(raw[:2]))
}
