package dto

import (
	"encoding/json"
	"time"
)

// MovementRequest body para POST /api/movements y PUT /api/movements/:id.
// from_location y to_location son opcionales; al menos uno es obligatorio.
// Qty llega como json.Number sin validar: la compuerta decide si es un entero
// positivo y reporta "quantity" si no lo es (un 3.5 no es un error de cuerpo,
// es un fallo de ese campo). Timestamp en RFC 3339 o "2006-01-02T15:04:05";
// vacío = hora actual.
type MovementRequest struct {
	ProductID    string      `json:"product_id"`
	FromLocation string      `json:"from_location,omitempty"`
	ToLocation   string      `json:"to_location,omitempty"`
	Qty          json.Number `json:"qty"`
	Timestamp    string      `json:"timestamp,omitempty"`
}

// MovementResponse salida de un movimiento confirmado.
type MovementResponse struct {
	MovementID   int64     `json:"movement_id"`
	ProductID    string    `json:"product_id"`
	FromLocation *string   `json:"from_location"`
	ToLocation   *string   `json:"to_location"`
	Qty          int64     `json:"qty"`
	Timestamp    time.Time `json:"timestamp"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListResponse movimientos más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
	Limit int                `json:"limit"`
}
