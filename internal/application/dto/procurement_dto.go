package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcurementSuggestionDTO una línea de la lista de acción de compras:
// un (sede, insumo) en CRITICAL o WARNING con su cantidad sugerida de pedido.
type ProcurementSuggestionDTO struct {
	LocationID        string           `json:"location_id"`
	LocationCode      string           `json:"location_code"`
	LocationName      string           `json:"location_name"`
	ItemID            string           `json:"item_id"`
	ItemCode          string           `json:"item_code"`
	ItemName          string           `json:"item_name"`
	Unit              string           `json:"unit"`
	Status            string           `json:"status"` // CRITICAL | WARNING
	CurrentQuantity   decimal.Decimal  `json:"current_quantity"`
	DailyUsageRate    decimal.Decimal  `json:"daily_usage_rate"`
	LeadTimeDays      int              `json:"lead_time_days"`
	DaysOfSupply      *decimal.Decimal `json:"days_of_supply"`
	SuggestedOrderQty decimal.Decimal  `json:"suggested_order_qty"` // tasa × lead − stock, piso en 0
	Priority          int              `json:"priority"`            // 1 = más urgente
}

// AlertDTO representación HTTP de una transición de estado registrada.
type AlertDTO struct {
	ID           string           `json:"id"`
	LocationID   string           `json:"location_id"`
	ItemID       string           `json:"item_id"`
	PrevStatus   string           `json:"prev_status,omitempty"`
	NewStatus    string           `json:"new_status"`
	DaysOfSupply *decimal.Decimal `json:"days_of_supply"`
	Notified     bool             `json:"notified"`
	CreatedAt    time.Time        `json:"created_at"`
}
