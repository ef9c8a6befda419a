package dto

import "time"

// CreateLocationRequest entrada para registrar una ubicación.
type CreateLocationRequest struct {
	LocationID string `json:"location_id" validate:"required,min=1,max=64"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
// El location_id es inmutable; solo el nombre es editable.
type UpdateLocationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LocationListResponse lista de ubicaciones ordenada por location_id.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}
