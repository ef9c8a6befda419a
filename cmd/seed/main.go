// seed puebla la base con un juego de datos de ejemplo: 4 productos, 4
// ubicaciones y ~20 movimientos (entradas, salidas y transferencias) con
// timestamps separados por un minuto. Todos los movimientos pasan por el caso
// de uso, así que el juego de datos respeta las mismas validaciones que la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

type seedMovement struct {
	productID string
	from      string
	to        string
	qty       json.Number
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	locationUC := usecase.NewLocationUseCase(locationRepo, txRunner)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo)

	products := []dto.CreateProductRequest{
		{ProductID: "PROD-A", Name: "Product A"},
		{ProductID: "PROD-B", Name: "Product B"},
		{ProductID: "PROD-C", Name: "Product C"},
		{ProductID: "PROD-D", Name: "Product D"},
	}
	for _, p := range products {
		if _, err := productUC.Create(p); err != nil {
			log.Fatal().Err(err).Str("product_id", p.ProductID).Msg("crear producto")
		}
	}

	locations := []dto.CreateLocationRequest{
		{LocationID: "LOC-X", Name: "Warehouse X"},
		{LocationID: "LOC-Y", Name: "Warehouse Y"},
		{LocationID: "LOC-Z", Name: "Warehouse Z"},
		{LocationID: "LOC-Q", Name: "Warehouse Q"},
	}
	for _, l := range locations {
		if _, err := locationUC.Create(l); err != nil {
			log.Fatal().Err(err).Str("location_id", l.LocationID).Msg("crear ubicación")
		}
	}

	now := time.Now().UTC()
	movements := []seedMovement{
		// Escenario base: entrada, entrada, transferencia
		{"PROD-A", "", "LOC-X", "10"},
		{"PROD-B", "", "LOC-X", "5"},
		{"PROD-A", "LOC-X", "LOC-Y", "4"},
		// Entradas
		{"PROD-C", "", "LOC-Z", "12"},
		{"PROD-D", "", "LOC-Q", "7"},
		{"PROD-A", "", "LOC-X", "3"},
		{"PROD-B", "", "LOC-Y", "9"},
		// Transferencias
		{"PROD-C", "LOC-Z", "LOC-Y", "5"},
		{"PROD-D", "LOC-Q", "LOC-X", "2"},
		{"PROD-B", "LOC-X", "LOC-Z", "3"},
		// Salidas
		{"PROD-A", "LOC-Y", "", "2"},
		{"PROD-C", "LOC-Y", "", "1"},
		{"PROD-D", "LOC-X", "", "1"},
		// Más variedad
		{"PROD-A", "LOC-X", "LOC-Q", "3"},
		{"PROD-B", "", "LOC-Q", "6"},
		{"PROD-C", "LOC-Y", "LOC-Z", "2"},
		{"PROD-D", "", "LOC-X", "4"},
		{"PROD-A", "LOC-Q", "", "1"},
		{"PROD-B", "LOC-Q", "LOC-X", "2"},
	}
	for i, m := range movements {
		ts := now.Add(time.Duration(i) * time.Minute).Format(time.RFC3339)
		req := dto.MovementRequest{
			ProductID:    m.productID,
			FromLocation: m.from,
			ToLocation:   m.to,
			Qty:          m.qty,
			Timestamp:    ts,
		}
		if _, err := movementUC.RegisterMovement(ctx, req); err != nil {
			log.Fatal().Err(err).Int("index", i).Msg("registrar movimiento")
		}
	}

	fmt.Printf("[seed] %d productos, %d ubicaciones y %d movimientos cargados\n",
		len(products), len(locations), len(movements))
}
