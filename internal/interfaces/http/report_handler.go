package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ReportHandler expone el reporte de saldos derivado del libro.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Balance godoc
// @Summary      Reporte de saldos por producto y ubicación
// @Description  Una fila por cada producto × ubicación, saldos cero incluidos, ordenado por product_id y luego location_id. product_id restringe el reporte a un producto.
// @Tags         reports
// @Produce      json
// @Param        product_id  query  string  false  "restringir a un producto"
// @Success      200  {object}  dto.BalanceReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.BalanceReport(c.Query("product_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
