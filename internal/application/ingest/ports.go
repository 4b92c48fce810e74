package ingest

import (
	"context"

	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un repositorio
// de hechos atado a esa tx. Garantiza que un conteo por lotes entra completo o no entra.
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRecordRepository) error) error
}
