// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Lo usan las pruebas y los arranques locales sin PostgreSQL; no hay
// transacciones reales: Run ejecuta el callback contra el mismo estado
// compartido.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store estado compartido de los tres repositorios en memoria.
type Store struct {
	mu             sync.RWMutex
	products       map[string]entity.Product
	locations      map[string]entity.Location
	movements      map[int64]entity.Movement
	nextMovementID int64
}

// New construye un Store vacío.
func New() *Store {
	return &Store{
		products:       make(map[string]entity.Product),
		locations:      make(map[string]entity.Location),
		movements:      make(map[int64]entity.Movement),
		nextMovementID: 1,
	}
}

// Products devuelve el adaptador de productos.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Locations devuelve el adaptador de ubicaciones.
func (s *Store) Locations() repository.LocationRepository { return &locationRepo{s: s} }

// Movements devuelve el adaptador del libro de movimientos.
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s} }

// Run implementa inventory.TxRunner sin transacción real: pasa los repos
// normales a fn. Suficiente para pruebas de un solo hilo.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) error) error {
	_ = ctx
	return fn(s.Products(), s.Locations(), s.Movements())
}

// ─── productos ───────────────────────────────────────────────────────────────

type productRepo struct {
	s *Store
}

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for id := range r.s.products {
		p := r.s.products[id]
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *productRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// ─── ubicaciones ─────────────────────────────────────────────────────────────

type locationRepo struct {
	s *Store
}

func (r *locationRepo) Create(location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[location.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.locations[location.ID] = *location
	return nil
}

func (r *locationRepo) GetByID(id string) (*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *locationRepo) Update(location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[location.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.locations[location.ID] = *location
	return nil
}

func (r *locationRepo) List() ([]*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Location, 0, len(r.s.locations))
	for id := range r.s.locations {
		l := r.s.locations[id]
		list = append(list, &l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *locationRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.locations, id)
	return nil
}

// ─── movimientos ─────────────────────────────────────────────────────────────

type movementRepo struct {
	s *Store
}

func (r *movementRepo) Create(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movement.ID = r.s.nextMovementID
	r.s.nextMovementID++
	r.s.movements[movement.ID] = *movement
	return nil
}

func (r *movementRepo) GetByID(id int64) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *movementRepo) Update(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[movement.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.movements[movement.ID] = *movement
	return nil
}

func (r *movementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	list, err := r.ListAll("")
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *movementRepo) ListAll(productID string) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Movement, 0, len(r.s.movements))
	for id := range r.s.movements {
		m := r.s.movements[id]
		if productID != "" && m.ProductID != productID {
			continue
		}
		list = append(list, &m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *movementRepo) ExistsForProduct(productID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *movementRepo) ExistsForLocation(locationID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.movements {
		if m.From() == locationID || m.To() == locationID {
			return true, nil
		}
	}
	return false, nil
}
