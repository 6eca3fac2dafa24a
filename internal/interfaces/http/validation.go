package http

import (
	"fmt"
	"strings"

	"github.com/jdrojas/plomeria-pos/internal/application/dto"
	"github.com/jdrojas/plomeria-pos/pkg/validator"
)

// validationError aplica las etiquetas `validate` del request y arma la
// respuesta 400 con el detalle de los campos fallidos. Nil si todo pasó.
func validationError(in interface{}) *dto.ErrorResponse {
	fails := validator.ValidateStruct(in)
	if len(fails) == 0 {
		return nil
	}
	parts := make([]string, 0, len(fails))
	for _, f := range fails {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.FailedField, f.Tag))
	}
	return &dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "campos inválidos",
		Detail:  strings.Join(parts, ", "),
	}
}
