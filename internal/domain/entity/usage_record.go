package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageRecord es un evento de consumo de un insumo en una sede.
// Hecho inmutable append-only; alimenta la tasa de consumo promedio.
type UsageRecord struct {
	ID         string
	LocationID string
	ItemID     string
	Quantity   decimal.Decimal // cantidad consumida, siempre >= 0
	UsedAt     time.Time
	CreatedAt  time.Time
	ReportedBy string
}
