package dto

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Detail información adicional, ej. la ruta del artefacto cuando la
	// factura se generó pero la venta no quedó registrada.
	Detail string `json:"detail,omitempty"`
}
