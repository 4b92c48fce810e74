package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/domain"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// IngestUseCase registra hechos de inventario y consumo (append-only).
// Es la única puerta de entrada de datos: aquí se rechazan cantidades negativas
// para que el clasificador nunca reciba filas inválidas.
type IngestUseCase struct {
	txRunner     TxRunner
	invRepo      repository.InventoryRecordRepository
	usageRepo    repository.UsageRecordRepository
	locationRepo repository.LocationRepository
	itemRepo     repository.ItemRepository
}

// NewIngestUseCase construye el caso de uso de ingesta.
func NewIngestUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRecordRepository,
	usageRepo repository.UsageRecordRepository,
	locationRepo repository.LocationRepository,
	itemRepo repository.ItemRepository,
) *IngestUseCase {
	return &IngestUseCase{
		txRunner:     txRunner,
		invRepo:      invRepo,
		usageRepo:    usageRepo,
		locationRepo: locationRepo,
		itemRepo:     itemRepo,
	}
}

// RecordSnapshot registra un conteo de stock para un (sede, insumo).
// Cantidad negativa es error de validación; la fila nunca se persiste.
func (uc *IngestUseCase) RecordSnapshot(ctx context.Context, organizationID, userID string, in dto.SnapshotRequest) error {
	if in.LocationID == "" || in.ItemID == "" || in.Quantity.IsNegative() {
		return domain.ErrInvalidInput
	}
	if err := uc.validateOwnership(organizationID, in.LocationID, in.ItemID); err != nil {
		return err
	}

	now := time.Now()
	reportedAt := now
	if in.ReportedAt != nil {
		reportedAt = *in.ReportedAt
	}
	rec := &entity.InventoryRecord{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		ReportedAt: reportedAt,
		CreatedAt:  now,
		ReportedBy: userID,
	}
	return uc.invRepo.Create(ctx, rec)
}

// RecordSnapshotBatch registra el conteo completo de una sede en una sola transacción:
// si una línea falla, no entra ninguna. Valida todas las líneas antes de abrir la tx.
func (uc *IngestUseCase) RecordSnapshotBatch(ctx context.Context, organizationID, userID string, in dto.SnapshotBatchRequest) error {
	if in.LocationID == "" || len(in.Counts) == 0 {
		return domain.ErrInvalidInput
	}
	loc, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil || loc == nil {
		return domain.ErrNotFound
	}
	if loc.OrganizationID != organizationID {
		return domain.ErrForbidden
	}
	for _, line := range in.Counts {
		if line.ItemID == "" || line.Quantity.IsNegative() {
			return domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(line.ItemID)
		if err != nil || item == nil {
			return domain.ErrNotFound
		}
		if item.OrganizationID != organizationID {
			return domain.ErrForbidden
		}
	}

	now := time.Now()
	reportedAt := now
	if in.ReportedAt != nil {
		reportedAt = *in.ReportedAt
	}

	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRecordRepository) error {
		for _, line := range in.Counts {
			rec := &entity.InventoryRecord{
				ID:         uuid.New().String(),
				LocationID: in.LocationID,
				ItemID:     line.ItemID,
				Quantity:   line.Quantity,
				ReportedAt: reportedAt,
				CreatedAt:  now,
				ReportedBy: userID,
			}
			if err := invRepo.Create(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// RecordUsage registra un evento de consumo. La cantidad debe ser mayor que cero.
func (uc *IngestUseCase) RecordUsage(ctx context.Context, organizationID, userID string, in dto.UsageRequest) error {
	if in.LocationID == "" || in.ItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.validateOwnership(organizationID, in.LocationID, in.ItemID); err != nil {
		return err
	}

	now := time.Now()
	usedAt := now
	if in.UsedAt != nil {
		usedAt = *in.UsedAt
	}
	rec := &entity.UsageRecord{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		UsedAt:     usedAt,
		CreatedAt:  now,
		ReportedBy: userID,
	}
	return uc.usageRepo.Create(ctx, rec)
}

// validateOwnership verifica que sede e insumo existan y pertenezcan a la organización.
func (uc *IngestUseCase) validateOwnership(organizationID, locationID, itemID string) error {
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil || loc == nil {
		return domain.ErrNotFound
	}
	if loc.OrganizationID != organizationID {
		return domain.ErrForbidden
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return domain.ErrNotFound
	}
	if item.OrganizationID != organizationID {
		return domain.ErrForbidden
	}
	return nil
}
