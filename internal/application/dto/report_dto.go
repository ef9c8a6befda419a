package dto

// BalanceRowResponse fila del reporte de saldos (producto × ubicación).
// qty puede ser negativo si el historial fue enmendado de forma inconsistente.
type BalanceRowResponse struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Qty        int64  `json:"qty"`
}

// BalanceReportResponse reporte completo de saldos.
type BalanceReportResponse struct {
	Rows  []BalanceRowResponse `json:"rows"`
	Total int                  `json:"total"`
}
