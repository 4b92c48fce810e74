package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es un conteo de stock reportado por una sede para un insumo.
// Hecho inmutable append-only: nunca se actualiza ni se borra; el stock vigente
// es el registro con mayor ReportedAt por (location, item).
type InventoryRecord struct {
	ID         string
	LocationID string
	ItemID     string
	Quantity   decimal.Decimal
	ReportedAt time.Time
	CreatedAt  time.Time
	ReportedBy string
}
