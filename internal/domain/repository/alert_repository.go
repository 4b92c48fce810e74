package repository

import (
	"context"

	"github.com/jhoicas/inventario-salud/internal/domain/entity"
)

// LastStatusRow último estado registrado en el log de alertas para un (sede, insumo).
type LastStatusRow struct {
	LocationID string
	ItemID     string
	Status     string
}

// AlertRepository persiste el log de transiciones de estado (append-only) y expone
// el último estado conocido por (sede, insumo) para detectar transiciones nuevas.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	GetLastStatuses(ctx context.Context, organizationID string) ([]LastStatusRow, error)
	ListRecent(ctx context.Context, organizationID string, limit int) ([]*entity.Alert, error)
}
