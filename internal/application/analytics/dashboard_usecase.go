// Package analytics contiene los casos de uso de la capa de presentación:
// métricas de cabecera del dashboard y heatmap de salud de stock.
package analytics

import (
	"context"
	"fmt"
	"time"

	appinventory "github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
	domaininv "github.com/jhoicas/inventario-salud/internal/domain/inventory"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// DashboardUseCase genera las métricas de cabecera del dashboard:
// sedes activas, quiebres críticos y advertencias.
//
// Fuente de datos: el estado derivado (StatusUseCase) más los conteos de sedes.
// No accede directamente a las tablas de hechos; delega todo en repositorios.
type DashboardUseCase struct {
	statusUC     *appinventory.StatusUseCase
	metricsRepo  repository.StockMetricsRepository
	locationRepo repository.LocationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	statusUC *appinventory.StatusUseCase,
	metricsRepo repository.StockMetricsRepository,
	locationRepo repository.LocationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{statusUC: statusUC, metricsRepo: metricsRepo, locationRepo: locationRepo}
}

// GetSummary construye el DashboardSummaryDTO para la organización indicada.
//
// Tres llamadas en paralelo:
//  1. ComputeStatuses            → conteo CRITICAL / WARNING / OK
//  2. CountReportingLocations    → sedes activas en la ventana
//  3. CountByOrganization        → total de sedes registradas
func (uc *DashboardUseCase) GetSummary(ctx context.Context, organizationID string) (*dto.DashboardSummaryDTO, error) {
	type statusesResult struct {
		statuses []dto.StockStatusDTO
		err      error
	}
	type countResult struct {
		n   int
		err error
	}

	statusCh := make(chan statusesResult, 1)
	activeCh := make(chan countResult, 1)
	totalCh := make(chan countResult, 1)

	go func() {
		statuses, err := uc.statusUC.ComputeStatuses(ctx, organizationID, "")
		statusCh <- statusesResult{statuses, err}
	}()
	go func() {
		n, err := uc.metricsRepo.CountReportingLocations(ctx, organizationID, uc.statusUC.UsageWindowDays())
		activeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.locationRepo.CountByOrganization(organizationID)
		totalCh <- countResult{n, err}
	}()

	statuses := <-statusCh
	active := <-activeCh
	total := <-totalCh

	if statuses.err != nil {
		return nil, fmt.Errorf("dashboard: estados de stock: %w", statuses.err)
	}
	if active.err != nil {
		return nil, fmt.Errorf("dashboard: sedes activas: %w", active.err)
	}
	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de sedes: %w", total.err)
	}

	summary := &dto.DashboardSummaryDTO{
		ActiveLocations: active.n,
		TotalLocations:  total.n,
		GeneratedAt:     time.Now(),
	}
	for _, s := range statuses.statuses {
		switch s.Status {
		case domaininv.StatusCritical:
			summary.CriticalCount++
		case domaininv.StatusWarning:
			summary.WarningCount++
		default:
			summary.OKCount++
		}
	}
	return summary, nil
}
