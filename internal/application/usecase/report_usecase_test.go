package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

// newReportFixture monta el escenario clásico: A entra 10 a X, luego
// transfiere 4 de X a Y; B entra 5 a X.
func newReportFixture(t *testing.T) *usecase.ReportUseCase {
	t.Helper()
	store := memory.New()

	for _, id := range []string{"PROD-A", "PROD-B"} {
		require.NoError(t, store.Products().Create(&entity.Product{ID: id, Name: "Producto " + id}))
	}
	for _, id := range []string{"LOC-X", "LOC-Y"} {
		require.NoError(t, store.Locations().Create(&entity.Location{ID: id, Name: "Bodega " + id}))
	}

	now := time.Now().UTC()
	locX, locY := "LOC-X", "LOC-Y"
	movements := []*entity.Movement{
		{ProductID: "PROD-A", ToLocation: &locX, Qty: 10, Timestamp: now},
		{ProductID: "PROD-B", ToLocation: &locX, Qty: 5, Timestamp: now.Add(time.Minute)},
		{ProductID: "PROD-A", FromLocation: &locX, ToLocation: &locY, Qty: 4, Timestamp: now.Add(2 * time.Minute)},
	}
	for _, m := range movements {
		require.NoError(t, store.Movements().Create(m))
	}

	return usecase.NewReportUseCase(store.Products(), store.Locations(), store.Movements())
}

func findRow(t *testing.T, rows []dto.BalanceRowResponse, productID, locationID string) dto.BalanceRowResponse {
	t.Helper()
	for _, r := range rows {
		if r.ProductID == productID && r.LocationID == locationID {
			return r
		}
	}
	t.Fatalf("no hay fila para (%s, %s)", productID, locationID)
	return dto.BalanceRowResponse{}
}

func TestBalanceReport_SaldosDerivadosDelLibro(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.BalanceReport("")
	require.NoError(t, err)

	// 2 productos × 2 ubicaciones = 4 filas, ceros incluidos.
	require.Equal(t, 4, out.Total)
	assert.Equal(t, int64(6), findRow(t, out.Rows, "PROD-A", "LOC-X").Qty)
	assert.Equal(t, int64(4), findRow(t, out.Rows, "PROD-A", "LOC-Y").Qty)
	assert.Equal(t, int64(5), findRow(t, out.Rows, "PROD-B", "LOC-X").Qty)
	assert.Equal(t, int64(0), findRow(t, out.Rows, "PROD-B", "LOC-Y").Qty)
}

func TestBalanceReport_OrdenadoPorProductoYUbicacion(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.BalanceReport("")
	require.NoError(t, err)
	require.Len(t, out.Rows, 4)

	assert.Equal(t, "PROD-A", out.Rows[0].ProductID)
	assert.Equal(t, "LOC-X", out.Rows[0].LocationID)
	assert.Equal(t, "PROD-A", out.Rows[1].ProductID)
	assert.Equal(t, "LOC-Y", out.Rows[1].LocationID)
	assert.Equal(t, "PROD-B", out.Rows[2].ProductID)
	assert.Equal(t, "PROD-B", out.Rows[3].ProductID)
}

func TestBalanceReport_FiltroPorProducto(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.BalanceReport("PROD-A")
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	for _, r := range out.Rows {
		assert.Equal(t, "PROD-A", r.ProductID)
	}
}

func TestBalanceReport_ProductoDesconocido(t *testing.T) {
	uc := newReportFixture(t)

	_, err := uc.BalanceReport("PROD-NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBalanceReport_SinMovimientosTodoEnCero(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Products().Create(&entity.Product{ID: "PROD-A", Name: "Product A"}))
	require.NoError(t, store.Locations().Create(&entity.Location{ID: "LOC-X", Name: "Warehouse X"}))

	uc := usecase.NewReportUseCase(store.Products(), store.Locations(), store.Movements())
	out, err := uc.BalanceReport("")
	require.NoError(t, err)

	require.Equal(t, 1, out.Total)
	assert.Equal(t, int64(0), out.Rows[0].Qty)
}
