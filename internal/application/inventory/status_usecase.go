// Package inventory contiene los casos de uso de la capa de transformación:
// del historial de hechos (conteos y consumos) al estado de stock derivado
// y a la lista de acción de compras.
package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	domaininv "github.com/jhoicas/inventario-salud/internal/domain/inventory"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// StatusUseCase deriva el estado de stock por (sede, insumo).
//
// Fuente de datos: StockMetricsRepository (consultas read-only sobre las tablas
// de hechos). El estado no se materializa: es una función pura de la última foto
// de las métricas, recalculada en cada petición.
type StatusUseCase struct {
	metricsRepo     repository.StockMetricsRepository
	usageWindowDays int
}

// NewStatusUseCase construye el caso de uso. windowDays define la ventana de la
// tasa de consumo promedio (0 usa el default de 30 días).
func NewStatusUseCase(metricsRepo repository.StockMetricsRepository, windowDays int) *StatusUseCase {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &StatusUseCase{metricsRepo: metricsRepo, usageWindowDays: windowDays}
}

// UsageWindowDays devuelve la ventana configurada (la usan dashboard y alertas).
func (uc *StatusUseCase) UsageWindowDays() int { return uc.usageWindowDays }

// ComputeStatuses consulta las métricas y aplica el clasificador a cada fila.
// locationID vacío considera todas las sedes de la organización.
// Las filas que el clasificador rechaza (datos negativos que escaparon a la
// ingesta) se excluyen del resultado, según el contrato de validación.
func (uc *StatusUseCase) ComputeStatuses(ctx context.Context, organizationID, locationID string) ([]dto.StockStatusDTO, error) {
	rows, err := uc.metricsRepo.GetStockMetrics(ctx, organizationID, locationID, uc.usageWindowDays)
	if err != nil {
		return nil, fmt.Errorf("estado de stock: métricas: %w", err)
	}

	statuses := make([]dto.StockStatusDTO, 0, len(rows))
	for _, row := range rows {
		lead := decimal.NewFromInt(int64(row.LeadTimeDays))
		c, err := domaininv.Classify(row.CurrentQuantity, row.DailyUsageRate, lead)
		if err != nil {
			continue // fila inválida: excluida del cálculo
		}
		statuses = append(statuses, dto.StockStatusDTO{
			LocationID:      row.LocationID,
			LocationCode:    row.LocationCode,
			LocationName:    row.LocationName,
			ItemID:          row.ItemID,
			ItemCode:        row.ItemCode,
			ItemName:        row.ItemName,
			Unit:            row.Unit,
			CurrentQuantity: row.CurrentQuantity,
			DailyUsageRate:  row.DailyUsageRate,
			LeadTimeDays:    row.LeadTimeDays,
			DaysOfSupply:    c.DaysOfSupply,
			Status:          c.Status,
			LastReportAt:    row.LastReportAt,
		})
	}
	return statuses, nil
}
