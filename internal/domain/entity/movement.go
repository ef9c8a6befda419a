package entity

import "time"

// Movement es una entrada del libro de movimientos: mueve Qty unidades de un
// producto entre ubicaciones. FromLocation/ToLocation son opcionales (nil):
// solo destino = entrada, solo origen = salida, ambos = traslado. Al menos uno
// debe estar presente y, si están ambos, deben diferir.
type Movement struct {
	ID           int64 // movement_id secuencial asignado por el store
	ProductID    string
	FromLocation *string
	ToLocation   *string
	Qty          int64 // siempre > 0; el signo lo da la dirección
	Timestamp    time.Time
	CreatedAt    time.Time
}

// From devuelve la ubicación de origen o "" si no hay.
func (m *Movement) From() string {
	if m.FromLocation == nil {
		return ""
	}
	return *m.FromLocation
}

// To devuelve la ubicación de destino o "" si no hay.
func (m *Movement) To() string {
	if m.ToLocation == nil {
		return ""
	}
	return *m.ToLocation
}
