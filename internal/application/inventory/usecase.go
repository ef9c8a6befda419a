package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Formatos aceptados para timestamps provistos por el caller. El primero es
// RFC 3339; los otros dos son los del formulario original (datetime-local).
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// MovementUseCase registra y enmienda movimientos del libro de forma
// transaccional. La validación es una compuerta secuencial que corta en el
// primer fallo y devuelve el campo exacto que falló; en caso de fallo el
// libro queda intacto.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RegisterMovement valida y persiste un movimiento nuevo. Devuelve el registro
// confirmado con el movement_id asignado y el timestamp resuelto.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in dto.MovementRequest) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		movement, err := buildMovement(in, productRepo, locationRepo)
		if err != nil {
			return err
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
		out = toMovementResponse(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AmendMovement reemplaza un movimiento ya confirmado pasando por la misma
// compuerta de validación que el registro. Ojo: enmendar reescribe saldos
// históricos; por eso es una operación explícita y no un update genérico.
func (uc *MovementUseCase) AmendMovement(ctx context.Context, id int64, in dto.MovementRequest) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		existing, err := movementRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		movement, err := buildMovement(in, productRepo, locationRepo)
		if err != nil {
			return err
		}
		movement.ID = existing.ID
		movement.CreatedAt = existing.CreatedAt
		if err := movementRepo.Update(movement); err != nil {
			return err
		}
		out = toMovementResponse(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un movimiento por movement_id.
func (uc *MovementUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	return toMovementResponse(movement), nil
}

// ListRecent lista los movimientos más recientes primero, hasta limit filas.
func (uc *MovementUseCase) ListRecent(limit int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items), Limit: limit}, nil
}

// buildMovement aplica la compuerta secuencial del movimiento contra el estado
// actual del libro (repos atados a la tx del caller). Orden de verificación:
// producto → endpoints presentes → origen≠destino → origen existe → destino
// existe → cantidad → timestamp. Corta en el primer fallo.
func buildMovement(
	in dto.MovementRequest,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) (*entity.Movement, error) {
	if in.ProductID == "" {
		return nil, domain.Invalid(domain.FieldProduct, "producto requerido")
	}
	product, err := productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.Invalid(domain.FieldProduct, "el producto no existe")
	}

	if in.FromLocation == "" && in.ToLocation == "" {
		return nil, domain.Invalid(domain.FieldEndpoints, "se requiere ubicación de origen, destino o ambas")
	}
	if in.FromLocation != "" && in.FromLocation == in.ToLocation {
		return nil, domain.Invalid(domain.FieldSameLocation, "origen y destino no pueden ser la misma ubicación")
	}
	if in.FromLocation != "" {
		loc, err := locationRepo.GetByID(in.FromLocation)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.Invalid(domain.FieldFromLocation, "la ubicación de origen no existe")
		}
	}
	if in.ToLocation != "" {
		loc, err := locationRepo.GetByID(in.ToLocation)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.Invalid(domain.FieldToLocation, "la ubicación de destino no existe")
		}
	}

	// Qty viaja sin validar hasta aquí: un valor no entero o no positivo es un
	// fallo del campo quantity, no un cuerpo ilegible.
	qty, err := in.Qty.Int64()
	if err != nil || qty <= 0 {
		return nil, domain.Invalid(domain.FieldQuantity, "la cantidad debe ser un entero positivo")
	}

	now := time.Now().UTC()
	ts := now
	if in.Timestamp != "" {
		parsed, err := parseTimestamp(in.Timestamp)
		if err != nil {
			return nil, domain.Invalid(domain.FieldTimestamp, "formato de timestamp inválido, usar YYYY-MM-DDTHH:MM:SS")
		}
		ts = parsed
	}

	movement := &entity.Movement{
		ProductID: in.ProductID,
		Qty:       qty,
		Timestamp: ts,
		CreatedAt: now,
	}
	if in.FromLocation != "" {
		from := in.FromLocation
		movement.FromLocation = &from
	}
	if in.ToLocation != "" {
		to := in.ToLocation
		movement.ToLocation = &to
	}
	return movement, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		MovementID:   m.ID,
		ProductID:    m.ProductID,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Qty:          m.Qty,
		Timestamp:    m.Timestamp,
		CreatedAt:    m.CreatedAt,
	}
}
