package usecase

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	inv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReportUseCase deriva el reporte de saldos por (producto, ubicación) desde el
// estado actual del libro. Se recalcula en cada petición: a esta escala se
// prefiere corrección sobre frescura incremental, sin saldos materializados
// que puedan quedar desfasados.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// BalanceReport produce una fila por cada producto × ubicación (saldos cero
// incluidos), ordenado por product_id y luego location_id. productID no vacío
// restringe el reporte a ese producto; si no existe, ErrNotFound.
func (uc *ReportUseCase) BalanceReport(productID string) (*dto.BalanceReportResponse, error) {
	var products []*entity.Product
	if productID != "" {
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		products = []*entity.Product{product}
	} else {
		var err error
		products, err = uc.productRepo.List()
		if err != nil {
			return nil, err
		}
	}

	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListAll(productID)
	if err != nil {
		return nil, err
	}

	rows := inv.ComputeBalances(products, locations, movements)
	items := make([]dto.BalanceRowResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.BalanceRowResponse{
			ProductID:  row.ProductID,
			LocationID: row.LocationID,
			Qty:        row.Qty,
		})
	}
	return &dto.BalanceReportResponse{Rows: items, Total: len(items)}, nil
}
