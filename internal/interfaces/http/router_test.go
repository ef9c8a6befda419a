package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la API completa sobre un store en memoria.
func buildTestApp() *fiber.App {
	store := memory.New()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:            "almacen-api-test",
		ProductUC:          usecase.NewProductUseCase(store.Products(), store),
		LocationUC:         usecase.NewLocationUseCase(store.Locations(), store),
		MovementUC:         inventory.NewMovementUseCase(store, store.Movements()),
		ReportUC:           usecase.NewReportUseCase(store.Products(), store.Locations(), store.Movements()),
		MovementsListLimit: 200,
	})
	return app
}

// doJSON lanza una petición con body JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedCatalog registra productos y ubicaciones vía la API.
func seedCatalog(t *testing.T, app *fiber.App) {
	t.Helper()
	for _, p := range []dto.CreateProductRequest{
		{ProductID: "PROD-A", Name: "Product A"},
		{ProductID: "PROD-B", Name: "Product B"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/products/", p)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	for _, l := range []dto.CreateLocationRequest{
		{LocationID: "LOC-X", Name: "Warehouse X"},
		{LocationID: "LOC-Y", Name: "Warehouse Y"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/locations/", l)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "almacen-api-test", body["service"])
}

func TestProductos_CicloCompleto(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products/", dto.CreateProductRequest{ProductID: "PROD-A", Name: "Product A"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "PROD-A", created.ProductID)

	// Duplicado → 409
	resp = doJSON(t, app, http.MethodPost, "/api/products/", dto.CreateProductRequest{ProductID: "PROD-A", Name: "Otro"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", errBody.Code)

	// Actualizar nombre
	resp = doJSON(t, app, http.MethodPut, "/api/products/PROD-A", dto.UpdateProductRequest{Name: "Producto A v2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Producto A v2", updated.Name)

	// Eliminar sin movimientos → 204 y luego 404
	resp = doJSON(t, app, http.MethodDelete, "/api/products/PROD-A", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/products/PROD-A", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductos_ValidacionYAusentes(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products/", dto.CreateProductRequest{ProductID: "", Name: "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/products/PROD-NOPE", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/products/PROD-NOPE", dto.UpdateProductRequest{Name: "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUbicaciones_EliminarConMovimientos(t *testing.T) {
	app := buildTestApp()
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.MovementRequest{
		ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// La ubicación referida no puede eliminarse.
	resp = doJSON(t, app, http.MethodDelete, "/api/locations/LOC-X", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", errBody.Code)

	// El producto referido tampoco.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/PROD-A", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Una ubicación sin movimientos sí.
	resp = doJSON(t, app, http.MethodDelete, "/api/locations/LOC-Y", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientos_RegistroYConsulta(t *testing.T) {
	app := buildTestApp()
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.MovementRequest{
		ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, int64(1), created.MovementID)

	resp = doJSON(t, app, http.MethodGet, "/api/movements/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, "PROD-A", got.ProductID)

	resp = doJSON(t, app, http.MethodGet, "/api/movements/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// El error de validación de un movimiento expone el campo que falló para que
// el caller sepa exactamente qué corregir.
func TestMovimientos_ErrorIndicaCampo(t *testing.T) {
	app := buildTestApp()
	seedCatalog(t, app)

	cases := []struct {
		name  string
		body  dto.MovementRequest
		field string
	}{
		{"producto inexistente", dto.MovementRequest{ProductID: "PROD-ZZ", ToLocation: "LOC-X", Qty: "1"}, "product"},
		{"sin origen ni destino", dto.MovementRequest{ProductID: "PROD-A", Qty: "1"}, "endpoints"},
		{"origen igual destino", dto.MovementRequest{ProductID: "PROD-A", FromLocation: "LOC-X", ToLocation: "LOC-X", Qty: "1"}, "same-location"},
		{"origen inexistente", dto.MovementRequest{ProductID: "PROD-A", FromLocation: "LOC-NOPE", ToLocation: "LOC-X", Qty: "1"}, "from-location"},
		{"destino inexistente", dto.MovementRequest{ProductID: "PROD-A", ToLocation: "LOC-NOPE", Qty: "1"}, "to-location"},
		{"cantidad cero", dto.MovementRequest{ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "0"}, "quantity"},
		{"cantidad no entera", dto.MovementRequest{ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "3.5"}, "quantity"},
		{"timestamp ilegible", dto.MovementRequest{ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "1", Timestamp: "no-es-fecha"}, "timestamp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/movements/", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			errBody := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, "VALIDATION", errBody.Code)
			assert.Equal(t, tc.field, errBody.Field)
		})
	}
}

func TestMovimientos_Enmienda(t *testing.T) {
	app := buildTestApp()
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.MovementRequest{
		ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.MovementResponse](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/movements/1", dto.MovementRequest{
		ProductID: "PROD-B", FromLocation: "LOC-X", ToLocation: "LOC-Y", Qty: "3",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	amended := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, created.MovementID, amended.MovementID)
	assert.Equal(t, "PROD-B", amended.ProductID)

	// Enmienda inválida → 400 con campo; el movimiento queda como estaba.
	resp = doJSON(t, app, http.MethodPut, "/api/movements/1", dto.MovementRequest{
		ProductID: "PROD-B", ToLocation: "LOC-Y", Qty: "-1",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "quantity", errBody.Field)

	// Enmendar un movimiento inexistente → 404.
	resp = doJSON(t, app, http.MethodPut, "/api/movements/999", dto.MovementRequest{
		ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "1",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestMovimientos_ListadoConLimite(t *testing.T) {
	app := buildTestApp()
	seedCatalog(t, app)

	for i := 0; i < 5; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.MovementRequest{
			ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "1",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/movements/?limit=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.MovementListResponse](t, resp)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 3, out.Limit)

	resp = doJSON(t, app, http.MethodGet, "/api/movements/?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de saldos
// ──────────────────────────────────────────────────────────────────────────────

func TestReporteSaldos_EscenarioClasico(t *testing.T) {
	app := buildTestApp()
	seedCatalog(t, app)

	for _, m := range []dto.MovementRequest{
		{ProductID: "PROD-A", ToLocation: "LOC-X", Qty: "10"},
		{ProductID: "PROD-B", ToLocation: "LOC-X", Qty: "5"},
		{ProductID: "PROD-A", FromLocation: "LOC-X", ToLocation: "LOC-Y", Qty: "4"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/movements/", m)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/reports/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.BalanceReportResponse](t, resp)

	require.Equal(t, 4, out.Total)
	byPair := map[[2]string]int64{}
	for _, r := range out.Rows {
		byPair[[2]string{r.ProductID, r.LocationID}] = r.Qty
	}
	assert.Equal(t, int64(6), byPair[[2]string{"PROD-A", "LOC-X"}])
	assert.Equal(t, int64(4), byPair[[2]string{"PROD-A", "LOC-Y"}])
	assert.Equal(t, int64(5), byPair[[2]string{"PROD-B", "LOC-X"}])
	assert.Equal(t, int64(0), byPair[[2]string{"PROD-B", "LOC-Y"}])

	// Filtro por producto.
	resp = doJSON(t, app, http.MethodGet, "/api/reports/balance?product_id=PROD-A", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := decode[dto.BalanceReportResponse](t, resp)
	assert.Equal(t, 2, filtered.Total)

	// Producto desconocido → 404.
	resp = doJSON(t, app, http.MethodGet, "/api/reports/balance?product_id=PROD-NOPE", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
