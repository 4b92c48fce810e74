package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

var (
	_ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)
	_ repository.UsageRecordRepository     = (*UsageRecordRepo)(nil)
)

// InventoryRecordRepo persiste conteos de stock. Solo INSERT: la tabla es append-only.
type InventoryRecordRepo struct {
	q Querier
}

// NewInventoryRecordRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRecordRepository(q Querier) *InventoryRecordRepo {
	return &InventoryRecordRepo{q: q}
}

func (r *InventoryRecordRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (id, location_id, item_id, quantity, reported_at, created_at, reported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.LocationID, rec.ItemID, rec.Quantity, rec.ReportedAt, rec.CreatedAt, nullableID(rec.ReportedBy),
	)
	if err != nil {
		return fmt.Errorf("create inventory record: %w", err)
	}
	return nil
}

// nullableID convierte un ID vacío en NULL (reported_by es opcional).
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// UsageRecordRepo persiste eventos de consumo. Solo INSERT: la tabla es append-only.
type UsageRecordRepo struct {
	q Querier
}

// NewUsageRecordRepository construye el adaptador. Acepta pool o tx (Querier).
func NewUsageRecordRepository(q Querier) *UsageRecordRepo {
	return &UsageRecordRepo{q: q}
}

func (r *UsageRecordRepo) Create(ctx context.Context, rec *entity.UsageRecord) error {
	query := `
		INSERT INTO usage_records (id, location_id, item_id, quantity, used_at, created_at, reported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.LocationID, rec.ItemID, rec.Quantity, rec.UsedAt, rec.CreatedAt, nullableID(rec.ReportedBy),
	)
	if err != nil {
		return fmt.Errorf("create usage record: %w", err)
	}
	return nil
}
