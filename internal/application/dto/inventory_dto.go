package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotRequest body para POST /api/inventory/snapshots: un conteo de stock.
// ReportedAt opcional; vacío usa la hora del servidor.
type SnapshotRequest struct {
	LocationID string          `json:"location_id"`
	ItemID     string          `json:"item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	ReportedAt *time.Time      `json:"reported_at,omitempty"`
}

// SnapshotBatchRequest body alternativo: una sede reporta el conteo completo
// de varios insumos en una sola transacción.
type SnapshotBatchRequest struct {
	LocationID string              `json:"location_id"`
	ReportedAt *time.Time          `json:"reported_at,omitempty"`
	Counts     []SnapshotCountItem `json:"counts"`
}

// SnapshotCountItem una línea del conteo por lotes.
type SnapshotCountItem struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// UsageRequest body para POST /api/inventory/usage: un evento de consumo.
type UsageRequest struct {
	LocationID string          `json:"location_id"`
	ItemID     string          `json:"item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UsedAt     *time.Time      `json:"used_at,omitempty"`
}

// StockStatusDTO estado de stock derivado para un (sede, insumo).
// DaysOfSupply es null cuando la tasa de consumo es cero (cobertura infinita).
type StockStatusDTO struct {
	LocationID      string           `json:"location_id"`
	LocationCode    string           `json:"location_code"`
	LocationName    string           `json:"location_name"`
	ItemID          string           `json:"item_id"`
	ItemCode        string           `json:"item_code"`
	ItemName        string           `json:"item_name"`
	Unit            string           `json:"unit"`
	CurrentQuantity decimal.Decimal  `json:"current_quantity"`
	DailyUsageRate  decimal.Decimal  `json:"daily_usage_rate"`
	LeadTimeDays    int              `json:"lead_time_days"`
	DaysOfSupply    *decimal.Decimal `json:"days_of_supply"`
	Status          string           `json:"status"` // CRITICAL | WARNING | OK
	LastReportAt    time.Time        `json:"last_report_at"`
}
