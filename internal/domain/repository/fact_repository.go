package repository

import (
	"context"

	"github.com/jhoicas/inventario-salud/internal/domain/entity"
)

// InventoryRecordRepository persiste conteos de stock (hechos append-only).
// No hay Update ni Delete: los hechos son inmutables.
type InventoryRecordRepository interface {
	Create(ctx context.Context, rec *entity.InventoryRecord) error
}

// UsageRecordRepository persiste eventos de consumo (hechos append-only).
type UsageRecordRepository interface {
	Create(ctx context.Context, rec *entity.UsageRecord) error
}
