package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo     repository.LocationRepository
	txRunner inventory.TxRunner
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, txRunner inventory.TxRunner) *LocationUseCase {
	return &LocationUseCase{repo: repo, txRunner: txRunner}
}

// Create registra una ubicación con identificador externo. Falla con
// ErrInvalidInput si id o nombre vienen vacíos y con ErrDuplicate si el id ya
// existe.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.LocationID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	location := &entity.Location{
		ID:        in.LocationID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por location_id.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza el nombre de una ubicación. El location_id es inmutable.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	location.Name = in.Name
	location.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(location); err != nil {
		// Un delete concurrente pudo ganar entre la lectura y el update;
		// se reporta como ausente, nunca como éxito sin fila persistida.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones ordenadas por location_id ascendente.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una ubicación solo si ningún movimiento la referencia como
// origen o destino. Verificación y DELETE en la misma transacción.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		location, err := locationRepo.GetByID(id)
		if err != nil {
			return err
		}
		if location == nil {
			return domain.ErrNotFound
		}
		used, err := movementRepo.ExistsForLocation(id)
		if err != nil {
			return err
		}
		if used {
			return domain.ErrConflict
		}
		return locationRepo.Delete(id)
	})
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		LocationID: l.ID,
		Name:       l.Name,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
