package entity

import "time"

// Product representa un producto o SKU rastreado por el libro de movimientos.
// El identificador lo aporta el caller (ej. "PROD-A"), es único e inmutable;
// el stock nunca se guarda aquí: se deriva de los movimientos.
type Product struct {
	ID        string // product_id externo
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
