package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrMissingFile no aborta la operación: el caller recibe la colección vacía
// y continúa en modo degradado, reportando el error al usuario.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	ErrMissingFile     = errors.New("archivo de colección ausente")
	ErrUnknownProduct  = errors.New("producto desconocido")
	ErrRender          = errors.New("error al generar la factura")
	ErrPersist         = errors.New("error al guardar la venta")
	ErrMissingArtifact = errors.New("la factura referenciada no existe")
)
