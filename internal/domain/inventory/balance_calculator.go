package inventory

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// BalanceRow es una fila del reporte de saldos: stock neto de un producto en
// una ubicación. Qty puede ser negativo si el historial fue editado de forma
// inconsistente; se reporta tal cual.
type BalanceRow struct {
	ProductID  string
	LocationID string
	Qty        int64
}

// ComputeBalances deriva el saldo por (producto, ubicación) a partir del libro
// de movimientos (servicio de dominio, sin estado).
// Saldo = sum(qty con to_location = L) - sum(qty con from_location = L).
// Produce una fila por cada combinación producto × ubicación, incluidas las de
// saldo cero, en el orden de los slices de entrada (los repos listan por
// identificador ascendente).
func ComputeBalances(products []*entity.Product, locations []*entity.Location, movements []*entity.Movement) []BalanceRow {
	type key struct{ productID, locationID string }
	net := make(map[key]int64)
	for _, m := range movements {
		if m.ToLocation != nil {
			net[key{m.ProductID, *m.ToLocation}] += m.Qty
		}
		if m.FromLocation != nil {
			net[key{m.ProductID, *m.FromLocation}] -= m.Qty
		}
	}

	rows := make([]BalanceRow, 0, len(products)*len(locations))
	for _, p := range products {
		for _, l := range locations {
			rows = append(rows, BalanceRow{
				ProductID:  p.ID,
				LocationID: l.ID,
				Qty:        net[key{p.ID, l.ID}],
			})
		}
	}
	return rows
}
