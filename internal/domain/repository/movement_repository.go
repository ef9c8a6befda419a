package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Create asigna el movement_id secuencial; Update reemplaza el
// registro completo (solo lo usa el caso de uso de enmienda).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	// ListRecent devuelve los movimientos más recientes primero
	// (timestamp desc, movement_id desc), hasta limit filas.
	ListRecent(limit int) ([]*entity.Movement, error)
	// ListAll devuelve el libro completo (para derivar saldos), opcionalmente
	// restringido a un producto (productID vacío = todos).
	ListAll(productID string) ([]*entity.Movement, error)
	// ExistsForProduct indica si algún movimiento referencia el producto.
	ExistsForProduct(productID string) (bool, error)
	// ExistsForLocation indica si algún movimiento referencia la ubicación
	// como origen o destino.
	ExistsForLocation(locationID string) (bool, error)
}
