package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeMetricsRepo devuelve filas fijas, como si vinieran de la consulta SQL.
type fakeMetricsRepo struct {
	rows            []repository.StockMetricsRow
	reportingCount  int
	lastWindowDays  int
	lastLocationArg string
}

func (f *fakeMetricsRepo) GetStockMetrics(_ context.Context, _, locationID string, windowDays int) ([]repository.StockMetricsRow, error) {
	f.lastWindowDays = windowDays
	f.lastLocationArg = locationID
	if locationID == "" {
		return f.rows, nil
	}
	out := make([]repository.StockMetricsRow, 0, len(f.rows))
	for _, r := range f.rows {
		if r.LocationID == locationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMetricsRepo) CountReportingLocations(_ context.Context, _ string, _ int) (int, error) {
	return f.reportingCount, nil
}

// fakeOrgRepo solo resuelve GetByID; el resto no se usa en estos tests.
type fakeOrgRepo struct {
	org *entity.Organization
}

func (f *fakeOrgRepo) Create(*entity.Organization) error { return nil }
func (f *fakeOrgRepo) GetByID(string) (*entity.Organization, error) {
	return f.org, nil
}
func (f *fakeOrgRepo) GetByName(string) (*entity.Organization, error) { return f.org, nil }
func (f *fakeOrgRepo) List(int, int) ([]*entity.Organization, error) {
	return []*entity.Organization{f.org}, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// metricsRow arma una fila de métricas con datos de relleno razonables.
func metricsRow(locCode, itemName, qty, rate string, leadDays int) repository.StockMetricsRow {
	return repository.StockMetricsRow{
		LocationID:      "loc-" + locCode,
		LocationCode:    locCode,
		LocationName:    "Sede " + locCode,
		ItemID:          "item-" + itemName,
		ItemCode:        "INS-" + itemName,
		ItemName:        itemName,
		Unit:            "unidad",
		CurrentQuantity: dec(qty),
		DailyUsageRate:  dec(rate),
		LeadTimeDays:    leadDays,
		LastReportAt:    time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeStatuses
// ──────────────────────────────────────────────────────────────────────────────

// Caso del ejemplo de referencia: 10 unidades, 5/día, lead 3 → CRITICAL con 2 días.
func TestComputeStatuses_ClasificaCadaFila(t *testing.T) {
	repo := &fakeMetricsRepo{rows: []repository.StockMetricsRow{
		metricsRow("HOSP-NORTE", "Guantes", "10", "5", 3),    // dos=2 < 3 → CRITICAL
		metricsRow("HOSP-NORTE", "Suero", "100", "2", 5),     // dos=50 ≥ 10 → OK
		metricsRow("CLIN-CENTRO", "Gasas", "30", "4", 5),     // dos=7.5 < 10 → WARNING
		metricsRow("CLIN-CENTRO", "Alcohol", "12", "0", 4),   // tasa 0 → OK, cobertura infinita
	}}
	uc := inventory.NewStatusUseCase(repo, 30)

	statuses, err := uc.ComputeStatuses(context.Background(), "org-1", "")
	require.NoError(t, err)
	require.Len(t, statuses, 4)

	byItem := make(map[string]string, len(statuses))
	for _, s := range statuses {
		byItem[s.ItemName] = s.Status
	}
	assert.Equal(t, "CRITICAL", byItem["Guantes"])
	assert.Equal(t, "OK", byItem["Suero"])
	assert.Equal(t, "WARNING", byItem["Gasas"])
	assert.Equal(t, "OK", byItem["Alcohol"])

	// La cobertura viene calculada; con tasa cero queda en null.
	for _, s := range statuses {
		switch s.ItemName {
		case "Guantes":
			require.NotNil(t, s.DaysOfSupply)
			assert.True(t, s.DaysOfSupply.Equal(dec("2")), "10/5 debe dar 2 días exactos")
		case "Alcohol":
			assert.Nil(t, s.DaysOfSupply, "consumo cero no debe producir cobertura finita")
		}
	}
}

// La ventana configurada debe llegar intacta a la consulta de métricas.
func TestComputeStatuses_PropagaVentana(t *testing.T) {
	repo := &fakeMetricsRepo{}
	uc := inventory.NewStatusUseCase(repo, 14)

	_, err := uc.ComputeStatuses(context.Background(), "org-1", "loc-X")
	require.NoError(t, err)
	assert.Equal(t, 14, repo.lastWindowDays)
	assert.Equal(t, "loc-X", repo.lastLocationArg)
	assert.Equal(t, 14, uc.UsageWindowDays())
}

// Ventana inválida cae al default de 30 días.
func TestNewStatusUseCase_VentanaPorDefecto(t *testing.T) {
	uc := inventory.NewStatusUseCase(&fakeMetricsRepo{}, 0)
	assert.Equal(t, 30, uc.UsageWindowDays())
}

// Una fila con datos negativos (que escapó a la ingesta) se excluye del
// resultado en lugar de tumbar el cálculo completo.
func TestComputeStatuses_ExcluyeFilasInvalidas(t *testing.T) {
	repo := &fakeMetricsRepo{rows: []repository.StockMetricsRow{
		metricsRow("HOSP-NORTE", "Guantes", "-5", "2", 3), // cantidad negativa
		metricsRow("HOSP-NORTE", "Suero", "100", "2", 5),
	}}
	uc := inventory.NewStatusUseCase(repo, 30)

	statuses, err := uc.ComputeStatuses(context.Background(), "org-1", "")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "Suero", statuses[0].ItemName)
}
