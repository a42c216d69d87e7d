package report

import (
	"context"
	"time"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// Tope de filas del reporte: el PDF es una foto reciente del libro, no un export completo.
const reportMaxRows = 500

// MovementPDFGenerator puerto para renderizar el reporte del libro de movimientos.
type MovementPDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, records []*entity.StockMovementRecord, generatedAt time.Time) ([]byte, error)
}

// MovementReportUseCase arma el reporte PDF del libro de movimientos (solo admin
// en el router, igual que el listado del libro).
type MovementReportUseCase struct {
	movRepo repository.StockMovementRepository
	pdf     MovementPDFGenerator
}

// NewMovementReportUseCase construye el caso de uso.
func NewMovementReportUseCase(movRepo repository.StockMovementRepository, pdf MovementPDFGenerator) *MovementReportUseCase {
	return &MovementReportUseCase{movRepo: movRepo, pdf: pdf}
}

// MovementsPDF genera el PDF con los movimientos más recientes.
func (uc *MovementReportUseCase) MovementsPDF(ctx context.Context) ([]byte, error) {
	records, err := uc.movRepo.List(reportMaxRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateMovementsPDF(ctx, records, time.Now())
}
