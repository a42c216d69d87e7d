// Package pdf implementa el reporte PDF del libro de movimientos de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Fecha | Tipo | Cant | Artículo | Usuario | Bodega│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de filas incluidas                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/invorya/almacen-api/internal/application/report"
	"github.com/invorya/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appreport.MovementPDFGenerator = (*MarotoMovementReport)(nil)

// MarotoMovementReport implementa report.MovementPDFGenerator usando Maroto v2.
type MarotoMovementReport struct{}

// NewMarotoMovementReport construye el generador.
func NewMarotoMovementReport() *MarotoMovementReport { return &MarotoMovementReport{} }

// GenerateMovementsPDF genera el PDF del libro y devuelve sus bytes.
func (g *MarotoMovementReport) GenerateMovementsPDF(
	_ context.Context,
	records []*entity.StockMovementRecord,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, rec := range records {
		m.AddRows(tableDetailRow(rec))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d movimientos incluidos (más recientes primero)", len(records)),
			props.Text{Size: 8, Color: colorGray, Align: align.Right},
		)),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Movimientos de stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(1).Add(text.New("#", header)),
		col.New(2).Add(text.New("Fecha", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(1).Add(text.New("Cant.", header)),
		col.New(3).Add(text.New("Artículo", header)),
		col.New(1).Add(text.New("Usuario", header)),
		col.New(2).Add(text.New("Bodega", header)),
	)
}

func tableDetailRow(rec *entity.StockMovementRecord) core.Row {
	cell := props.Text{Size: 8}
	warehouse := orDash(rec.WarehouseName)
	if rec.WarehouseLocation != nil && *rec.WarehouseLocation != "" {
		warehouse += " (" + *rec.WarehouseLocation + ")"
	}
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.FormatInt(rec.ID, 10), cell)),
		col.New(2).Add(text.New(rec.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(2).Add(text.New(rec.Type, cell)),
		col.New(1).Add(text.New(strconv.FormatInt(rec.Quantity, 10), cell)),
		col.New(3).Add(text.New(orDash(rec.ItemName), cell)),
		col.New(1).Add(text.New(orDash(rec.UserName), cell)),
		col.New(2).Add(text.New(warehouse, cell)),
	)
}

// orDash: las referencias que ya no resuelven se muestran como "—".
func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
