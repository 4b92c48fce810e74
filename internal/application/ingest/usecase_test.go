package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/application/ingest"
	"github.com/jhoicas/inventario-salud/internal/domain"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvRepo struct {
	created []*entity.InventoryRecord
	failOn  string // ItemID que fuerza error de escritura
}

func (f *fakeInvRepo) Create(_ context.Context, rec *entity.InventoryRecord) error {
	if f.failOn != "" && rec.ItemID == f.failOn {
		return errors.New("write failed")
	}
	f.created = append(f.created, rec)
	return nil
}

type fakeUsageRepo struct {
	created []*entity.UsageRecord
}

func (f *fakeUsageRepo) Create(_ context.Context, rec *entity.UsageRecord) error {
	f.created = append(f.created, rec)
	return nil
}

// fakeTxRunner simula la atomicidad: si fn falla, descarta lo escrito.
type fakeTxRunner struct {
	invRepo *fakeInvRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.InventoryRecordRepository) error) error {
	before := len(f.invRepo.created)
	if err := fn(f.invRepo); err != nil {
		f.invRepo.created = f.invRepo.created[:before] // rollback
		return err
	}
	return nil
}

type fakeLocationRepo struct {
	byID map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(*entity.Location) error { return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.byID[id], nil
}
func (f *fakeLocationRepo) GetByCode(string, string) (*entity.Location, error) { return nil, nil }
func (f *fakeLocationRepo) ListByOrganization(string, int, int) ([]*entity.Location, error) {
	return nil, nil
}
func (f *fakeLocationRepo) CountByOrganization(string) (int, error) { return len(f.byID), nil }

type fakeItemRepo struct {
	byID map[string]*entity.Item
}

func (f *fakeItemRepo) Create(*entity.Item) error { return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return f.byID[id], nil
}
func (f *fakeItemRepo) GetByCode(string, string) (*entity.Item, error) { return nil, nil }
func (f *fakeItemRepo) ListByOrganization(string, int, int) ([]*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Update(*entity.Item) error { return nil }

const (
	testOrgID  = "org-1"
	otherOrgID = "org-2"
	testLocID  = "loc-1"
	testItemID = "item-1"
)

type fixture struct {
	uc        *ingest.IngestUseCase
	invRepo   *fakeInvRepo
	usageRepo *fakeUsageRepo
}

func newFixture() *fixture {
	invRepo := &fakeInvRepo{}
	usageRepo := &fakeUsageRepo{}
	locRepo := &fakeLocationRepo{byID: map[string]*entity.Location{
		testLocID:   {ID: testLocID, OrganizationID: testOrgID, Code: "HOSP-NORTE"},
		"loc-ajena": {ID: "loc-ajena", OrganizationID: otherOrgID, Code: "OTRA"},
	}}
	itemRepo := &fakeItemRepo{byID: map[string]*entity.Item{
		testItemID: {ID: testItemID, OrganizationID: testOrgID, Code: "INS-GUANTES", LeadTimeDays: 7},
		"item-2":   {ID: "item-2", OrganizationID: testOrgID, Code: "INS-SUERO", LeadTimeDays: 5},
	}}
	uc := ingest.NewIngestUseCase(&fakeTxRunner{invRepo: invRepo}, invRepo, usageRepo, locRepo, itemRepo)
	return &fixture{uc: uc, invRepo: invRepo, usageRepo: usageRepo}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSnapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSnapshot_Persiste(t *testing.T) {
	f := newFixture()
	reportedAt := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

	err := f.uc.RecordSnapshot(context.Background(), testOrgID, "user-1", dto.SnapshotRequest{
		LocationID: testLocID,
		ItemID:     testItemID,
		Quantity:   dec("42.5"),
		ReportedAt: &reportedAt,
	})
	require.NoError(t, err)
	require.Len(t, f.invRepo.created, 1)

	rec := f.invRepo.created[0]
	assert.NotEmpty(t, rec.ID)
	assert.True(t, rec.Quantity.Equal(dec("42.5")))
	assert.Equal(t, reportedAt, rec.ReportedAt)
	assert.Equal(t, "user-1", rec.ReportedBy)
}

// Cantidad negativa se rechaza en la ingesta; la fila nunca se persiste.
func TestRecordSnapshot_CantidadNegativa_Rechazada(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordSnapshot(context.Background(), testOrgID, "", dto.SnapshotRequest{
		LocationID: testLocID,
		ItemID:     testItemID,
		Quantity:   dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.invRepo.created, "una cantidad negativa no debe persistirse")
}

// Conteo en cero es válido: stock agotado es un hecho real.
func TestRecordSnapshot_CantidadCero_Valida(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordSnapshot(context.Background(), testOrgID, "", dto.SnapshotRequest{
		LocationID: testLocID,
		ItemID:     testItemID,
		Quantity:   decimal.Zero,
	})
	require.NoError(t, err)
	require.Len(t, f.invRepo.created, 1)
	assert.True(t, f.invRepo.created[0].Quantity.IsZero())
}

func TestRecordSnapshot_SedeInexistente(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordSnapshot(context.Background(), testOrgID, "", dto.SnapshotRequest{
		LocationID: "loc-fantasma",
		ItemID:     testItemID,
		Quantity:   dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una sede de otra organización es un intento de cruce de tenant.
func TestRecordSnapshot_SedeDeOtraOrganizacion(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordSnapshot(context.Background(), testOrgID, "", dto.SnapshotRequest{
		LocationID: "loc-ajena",
		ItemID:     testItemID,
		Quantity:   dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.invRepo.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSnapshotBatch
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSnapshotBatch_TodoONada(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordSnapshotBatch(context.Background(), testOrgID, "user-1", dto.SnapshotBatchRequest{
		LocationID: testLocID,
		Counts: []dto.SnapshotCountItem{
			{ItemID: testItemID, Quantity: dec("10")},
			{ItemID: "item-2", Quantity: dec("20")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, f.invRepo.created, 2)
}

// Una línea negativa invalida el lote completo antes de abrir la transacción.
func TestRecordSnapshotBatch_LineaNegativa_NadaEntra(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordSnapshotBatch(context.Background(), testOrgID, "", dto.SnapshotBatchRequest{
		LocationID: testLocID,
		Counts: []dto.SnapshotCountItem{
			{ItemID: testItemID, Quantity: dec("10")},
			{ItemID: "item-2", Quantity: dec("-3")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.invRepo.created, "ninguna línea del lote debe persistirse")
}

// Un fallo de escritura a mitad del lote revierte las líneas ya escritas.
func TestRecordSnapshotBatch_FalloDeEscritura_Rollback(t *testing.T) {
	f := newFixture()
	f.invRepo.failOn = "item-2"

	err := f.uc.RecordSnapshotBatch(context.Background(), testOrgID, "", dto.SnapshotBatchRequest{
		LocationID: testLocID,
		Counts: []dto.SnapshotCountItem{
			{ItemID: testItemID, Quantity: dec("10")},
			{ItemID: "item-2", Quantity: dec("20")},
		},
	})
	assert.Error(t, err)
	assert.Empty(t, f.invRepo.created, "la transacción debe revertir la primera línea")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordUsage
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordUsage_Persiste(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordUsage(context.Background(), testOrgID, "user-1", dto.UsageRequest{
		LocationID: testLocID,
		ItemID:     testItemID,
		Quantity:   dec("3.5"),
	})
	require.NoError(t, err)
	require.Len(t, f.usageRepo.created, 1)
	assert.True(t, f.usageRepo.created[0].Quantity.Equal(dec("3.5")))
}

// El consumo debe ser estrictamente positivo: cero no es un evento.
func TestRecordUsage_CantidadNoPositiva_Rechazada(t *testing.T) {
	f := newFixture()

	for _, qty := range []string{"0", "-2"} {
		err := f.uc.RecordUsage(context.Background(), testOrgID, "", dto.UsageRequest{
			LocationID: testLocID,
			ItemID:     testItemID,
			Quantity:   dec(qty),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s debe rechazarse", qty)
	}
	assert.Empty(t, f.usageRepo.created)
}
