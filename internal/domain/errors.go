package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("identificador duplicado")
	ErrConflict     = errors.New("registros dependientes existentes")
)

// Campos de validación de movimientos. El valor se devuelve tal cual al caller
// para que pueda corregir exactamente el campo que falló.
const (
	FieldProduct      = "product"
	FieldEndpoints    = "endpoints"
	FieldSameLocation = "same-location"
	FieldFromLocation = "from-location"
	FieldToLocation   = "to-location"
	FieldQuantity     = "quantity"
	FieldTimestamp    = "timestamp"
)

// ValidationError es un fallo de entrada con el campo/regla que lo causó.
// Envuelve ErrInvalidInput para poder usar errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid construye un ValidationError para el campo dado.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
