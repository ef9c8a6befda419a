package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	// List devuelve todas las ubicaciones ordenadas por location_id ascendente.
	List() ([]*entity.Location, error)
	Delete(id string) error
}
