package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockMetricsRow resultado crudo de la consulta de métricas por (sede, insumo).
// Lo produce la DB; el clasificador de dominio lo convierte en estado.
type StockMetricsRow struct {
	LocationID      string
	LocationCode    string
	LocationName    string
	ItemID          string
	ItemCode        string
	ItemName        string
	Unit            string
	CurrentQuantity decimal.Decimal // cantidad del último conteo reportado
	DailyUsageRate  decimal.Decimal // consumo promedio diario en la ventana
	LeadTimeDays    int
	LastReportAt    time.Time
}

// StockMetricsRepository define las consultas de lectura sobre las tablas de hechos.
// Las implementaciones son read-only (no modifican datos). Los pares (sede, insumo)
// sin conteo reportado o con lead time cero quedan excluidos del resultado.
type StockMetricsRepository interface {
	// GetStockMetrics devuelve, por cada (sede, insumo) con al menos un conteo,
	// la cantidad vigente y la tasa de consumo promedio de los últimos windowDays días.
	// locationID vacío considera todas las sedes de la organización.
	GetStockMetrics(
		ctx context.Context,
		organizationID, locationID string,
		windowDays int,
	) ([]StockMetricsRow, error)

	// CountReportingLocations devuelve cuántas sedes reportaron al menos un conteo
	// en los últimos windowDays días (métrica "sedes activas" del dashboard).
	CountReportingLocations(
		ctx context.Context,
		organizationID string,
		windowDays int,
	) (int, error)
}
