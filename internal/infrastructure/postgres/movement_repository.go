package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el movement_id secuencial (BIGSERIAL).
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO product_movements (product_id, from_location, to_location, qty, ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING movement_id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.FromLocation, movement.ToLocation,
		movement.Qty, movement.Timestamp, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por movement_id.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `
		SELECT movement_id, product_id, from_location, to_location, qty, ts, created_at
		FROM product_movements WHERE movement_id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.FromLocation, &m.ToLocation, &m.Qty, &m.Timestamp, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Update reemplaza el registro completo del movimiento (enmienda).
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE product_movements
		SET product_id = $2, from_location = $3, to_location = $4, qty = $5, ts = $6
		WHERE movement_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.FromLocation, movement.ToLocation,
		movement.Qty, movement.Timestamp,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecent lista los movimientos más recientes primero (ts desc, movement_id desc).
func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	query := `
		SELECT movement_id, product_id, from_location, to_location, qty, ts, created_at
		FROM product_movements
		ORDER BY ts DESC, movement_id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListAll devuelve el libro completo en orden de inserción, opcionalmente
// restringido a un producto (productID vacío = todos). Lo usa el reporte de
// saldos, que se deriva del libro en cada petición.
func (r *MovementRepo) ListAll(productID string) ([]*entity.Movement, error) {
	query := `
		SELECT movement_id, product_id, from_location, to_location, qty, ts, created_at
		FROM product_movements
		WHERE ($1 = '' OR product_id = $1)
		ORDER BY movement_id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list all movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ExistsForProduct indica si algún movimiento referencia el producto.
func (r *MovementRepo) ExistsForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM product_movements WHERE product_id = $1)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists for product: %w", err)
	}
	return exists, nil
}

// ExistsForLocation indica si algún movimiento referencia la ubicación como origen o destino.
func (r *MovementRepo) ExistsForLocation(locationID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM product_movements
			WHERE from_location = $1 OR to_location = $1
		)`,
		locationID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists for location: %w", err)
	}
	return exists, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.FromLocation, &m.ToLocation, &m.Qty, &m.Timestamp, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
