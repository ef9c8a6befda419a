package dto

// ErrorResponse cuerpo de error HTTP. Field solo viene en errores de
// validación de movimientos (product, endpoints, same-location, ...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
