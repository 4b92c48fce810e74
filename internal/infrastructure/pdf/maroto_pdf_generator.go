// Package pdf implementa la generación del artefacto PDF de la Lista de Acción
// de Compras para el equipo de adquisiciones.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Organización + Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sede | Insumo | Estado | Stock | Cobertura | Pedido  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: críticos / advertencias / líneas totales           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	appinventory "github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
	domaininv "github.com/jhoicas/inventario-salud/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarning  = &props.Color{Red: 200, Green: 130, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.ProcurementPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inventory.ProcurementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateProcurementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProcurementPDF(
	_ context.Context,
	orgName string,
	suggestions []dto.ProcurementSuggestionDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Acción de Compras", true).
		WithAuthor(orgName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(orgName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(suggestions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(suggestions))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y organización + fecha (der).
func headerRow(orgName string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Lista de Acción de Compras", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Insumos en estado CRITICAL o WARNING, priorizados por urgencia", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(orgName, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}

	return row.New(7).Add(
		col.New(2).Add(text.New("Sede", header)),
		col.New(3).Add(text.New("Insumo", header)),
		col.New(2).Add(text.New("Estado", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(2).Add(text.New("Cobertura (días)", headerRight)),
		col.New(2).Add(text.New("Pedido sugerido", headerRight)),
	)
}

func tableDetailRows(suggestions []dto.ProcurementSuggestionDTO) []core.Row {
	rows := make([]core.Row, 0, len(suggestions))
	for _, s := range suggestions {
		statusColor := colorWarning
		if s.Status == domaininv.StatusCritical {
			statusColor = colorCritical
		}
		days := "-"
		if s.DaysOfSupply != nil {
			days = s.DaysOfSupply.Round(1).String()
		}

		cell := props.Text{Size: 8, Top: 1}
		cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}

		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(s.LocationCode, cell)),
			col.New(3).Add(text.New(s.ItemName, cell)),
			col.New(2).Add(text.New(s.Status, props.Text{
				Size: 8, Top: 1, Style: fontstyle.Bold, Color: statusColor,
			})),
			col.New(1).Add(text.New(s.CurrentQuantity.String(), cellRight)),
			col.New(2).Add(text.New(days, cellRight)),
			col.New(2).Add(text.New(s.SuggestedOrderQty.String()+" "+s.Unit, cellRight)),
		))
	}
	return rows
}

func summaryRow(suggestions []dto.ProcurementSuggestionDTO) core.Row {
	criticos, advertencias := 0, 0
	for _, s := range suggestions {
		if s.Status == domaininv.StatusCritical {
			criticos++
		} else {
			advertencias++
		}
	}
	resumen := fmt.Sprintf("%d líneas: %d críticas, %d advertencias", len(suggestions), criticos, advertencias)

	return row.New(8).Add(
		col.New(12).Add(
			text.New(resumen, props.Text{Size: 8, Top: 2, Color: colorGray, Align: align.Right}),
		),
	)
}
