package entity

import "time"

// Location representa una bodega o ubicación física donde hay stock.
// El identificador lo aporta el caller (ej. "LOC-X"), es único e inmutable.
type Location struct {
	ID        string // location_id externo
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
