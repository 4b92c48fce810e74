package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-salud/internal/application/analytics"
	appinventory "github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

func newHeatmapUC(rows []repository.StockMetricsRow, maxDays int) *analytics.HeatmapUseCase {
	statusUC := appinventory.NewStatusUseCase(&fakeMetricsRepo{rows: rows}, 30)
	return analytics.NewHeatmapUseCase(statusUC, maxDays)
}

// Ejes ordenados y una celda por (sede, insumo) con datos; las celdas sin
// reporte simplemente no existen en la grilla.
func TestGetHeatmap_EjesYCeldas(t *testing.T) {
	uc := newHeatmapUC([]repository.StockMetricsRow{
		metricsRow("PUESTO-SUR", "Guantes", "10", "5", 3),
		metricsRow("HOSP-NORTE", "Suero", "100", "2", 5),
		metricsRow("HOSP-NORTE", "Guantes", "40", "5", 3),
	}, 30)

	hm, err := uc.GetHeatmap(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"HOSP-NORTE", "PUESTO-SUR"}, hm.Locations, "eje X ordenado por código")
	assert.Equal(t, []string{"Guantes", "Suero"}, hm.Items, "eje Y ordenado por nombre")
	assert.Equal(t, 30, hm.MaxDays)
	assert.Len(t, hm.Cells, 3, "solo los pares con datos tienen celda")
}

// La escala de color recorta al tope: cobertura 50 con tope 30 pinta 30,
// pero el tooltip conserva el valor real.
func TestGetHeatmap_RecortaEscala(t *testing.T) {
	uc := newHeatmapUC([]repository.StockMetricsRow{
		metricsRow("HOSP-NORTE", "Suero", "100", "2", 5), // dos=50
		metricsRow("HOSP-NORTE", "Guantes", "10", "5", 3), // dos=2
	}, 30)

	hm, err := uc.GetHeatmap(context.Background(), "org-1")
	require.NoError(t, err)

	cells := cellsByItem(hm.Cells)

	suero := cells["Suero"]
	assert.True(t, suero.ScaleValue.Equal(dec("30")), "50 días se pinta como el tope 30")
	require.NotNil(t, suero.DaysRemaining)
	assert.True(t, suero.DaysRemaining.Equal(dec("50")), "el tooltip conserva los 50 reales")

	guantes := cells["Guantes"]
	assert.True(t, guantes.ScaleValue.Equal(dec("2")), "bajo el tope se pinta el valor real")
}

// Cobertura infinita (consumo cero) pinta como el máximo de la escala con
// DaysRemaining en null.
func TestGetHeatmap_CoberturaInfinita(t *testing.T) {
	uc := newHeatmapUC([]repository.StockMetricsRow{
		metricsRow("HOSP-NORTE", "Alcohol", "12", "0", 4),
	}, 30)

	hm, err := uc.GetHeatmap(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, hm.Cells, 1)

	cell := hm.Cells[0]
	assert.Nil(t, cell.DaysRemaining)
	assert.True(t, cell.ScaleValue.Equal(dec("30")), "infinito pinta como el máximo")
	assert.Equal(t, "OK", cell.Status)
}

func cellsByItem(cells []dto.HeatmapCellDTO) map[string]dto.HeatmapCellDTO {
	m := make(map[string]dto.HeatmapCellDTO, len(cells))
	for _, c := range cells {
		m[c.ItemName] = c
	}
	return m
}
