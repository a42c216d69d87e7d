package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/application/inventory"
	"github.com/invorya/almacen-api/internal/application/report"
)

// MovementHandler maneja la lectura del libro de movimientos (solo admin).
type MovementHandler struct {
	ledger *inventory.LedgerUseCase
	report *report.MovementReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *inventory.LedgerUseCase, reportUC *report.MovementReportUseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger, report: reportUC}
}

// List godoc
// @Summary      Listar movimientos de stock (solo admin)
// @Description  Página del libro en orden created_at DESC; nombres en null si la referencia ya no resuelve.
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página (1-based)"  default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock-movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if limit > 100 {
		limit = 100
	}
	out, err := h.ledger.List(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF del libro de movimientos (solo admin)
// @Tags         stock-movements
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock-movements/report [get]
func (h *MovementHandler) ReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.report.MovementsPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos-stock.pdf"`)
	return c.Send(pdfBytes)
}
