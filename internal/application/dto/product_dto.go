package dto

import "time"

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	ProductID string `json:"product_id" validate:"required,min=1,max=64"`
	Name      string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateProductRequest entrada para actualizar un producto.
// El product_id es inmutable; solo el nombre es editable.
type UpdateProductRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista de productos ordenada por product_id.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
