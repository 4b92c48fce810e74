package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO métricas de cabecera del dashboard.
type DashboardSummaryDTO struct {
	ActiveLocations int       `json:"active_locations"` // sedes con reporte en la ventana
	TotalLocations  int       `json:"total_locations"`
	CriticalCount   int       `json:"critical_count"`
	WarningCount    int       `json:"warning_count"`
	OKCount         int       `json:"ok_count"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// HeatmapDTO grilla sede × insumo para el heatmap de salud de stock.
// MaxDays es el tope de la escala de color (los valores se recortan para pintar).
type HeatmapDTO struct {
	Locations []string         `json:"locations"` // códigos de sede, eje X
	Items     []string         `json:"items"`     // nombres de insumo, eje Y
	MaxDays   int              `json:"max_days"`
	Cells     []HeatmapCellDTO `json:"cells"`
}

// HeatmapCellDTO una celda del heatmap con los datos del tooltip.
// DaysRemaining es null con consumo cero; ScaleValue siempre está en [0, MaxDays].
type HeatmapCellDTO struct {
	LocationCode    string           `json:"location_code"`
	ItemName        string           `json:"item_name"`
	CurrentQuantity decimal.Decimal  `json:"current_quantity"`
	DaysRemaining   *decimal.Decimal `json:"days_remaining"`
	ScaleValue      decimal.Decimal  `json:"scale_value"`
	Status          string           `json:"status"`
}
