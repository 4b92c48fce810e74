package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert registra una transición de estado de stock detectada por el escaneo periódico.
// DaysOfSupply es nil cuando el horizonte es infinito (tasa de consumo cero).
type Alert struct {
	ID             string
	OrganizationID string
	LocationID     string
	ItemID         string
	PrevStatus     string // estado anterior; vacío si es la primera observación
	NewStatus      string
	DaysOfSupply   *decimal.Decimal
	Notified       bool // true si se envió al webhook configurado
	CreatedAt      time.Time
}
