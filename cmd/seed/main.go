// seed puebla la base de datos con datos de demostración: una organización,
// tres sedes, cinco insumos críticos, un usuario admin y 30 días de hechos de
// inventario (conteos y consumos) que producen los tres estados en el dashboard.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-salud/internal/application/auth"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/application/ingest"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-salud/pkg/config"
)

type seedItem struct {
	code, name, unit string
	leadTimeDays     int
	dailyUse         decimal.Decimal // consumo diario simulado
	stockDays        decimal.Decimal // días de cobertura del conteo inicial
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	invRepo := postgres.NewInventoryRecordRepository(pool)
	usageRepo := postgres.NewUsageRecordRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	ingestUC := ingest.NewIngestUseCase(txRunner, invRepo, usageRepo, locationRepo, itemRepo)
	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Organización demo
	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      "Fundación Salud Demo",
		Country:   "CO",
		Email:     "demo@fundacionsalud.org",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := orgRepo.Create(org); err != nil {
		fail("crear organización: %v", err)
	}
	fmt.Printf("organización: %s (%s)\n", org.Name, org.ID)

	// Usuario admin
	if _, err := authUC.RegisterUser(dto.RegisterRequest{
		OrganizationID: org.ID,
		Email:          "admin@fundacionsalud.org",
		Password:       "admin123",
		Name:           "Admin Demo",
		Role:           entity.RoleAdmin,
	}); err != nil {
		fail("crear usuario admin: %v", err)
	}
	fmt.Println("usuario: admin@fundacionsalud.org / admin123")

	// Sedes
	locDefs := []struct{ code, name, region string }{
		{"HOSP-NORTE", "Hospital Norte", "Antioquia"},
		{"CLIN-CENTRO", "Clínica Centro", "Cundinamarca"},
		{"PUESTO-SUR", "Puesto de Salud Sur", "Nariño"},
	}
	locations := make([]*entity.Location, 0, len(locDefs))
	for _, d := range locDefs {
		l := &entity.Location{
			ID:             uuid.New().String(),
			OrganizationID: org.ID,
			Code:           d.code,
			Name:           d.name,
			Region:         d.region,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := locationRepo.Create(l); err != nil {
			fail("crear sede %s: %v", d.code, err)
		}
		locations = append(locations, l)
	}

	// Insumos: cobertura pensada para cubrir los tres estados.
	// CRITICAL: cobertura < lead time; WARNING: < 2×lead time; OK: el resto.
	itemDefs := []seedItem{
		{"INS-GUANTES", "Guantes de nitrilo", "caja", 7, dec("4"), dec("5")},    // CRITICAL
		{"INS-SUERO", "Suero fisiológico 500ml", "unidad", 5, dec("6"), dec("8")}, // WARNING
		{"INS-AMOX", "Amoxicilina 500mg", "blíster", 10, dec("2"), dec("45")},   // OK
		{"INS-GASAS", "Gasas estériles", "paquete", 3, dec("5"), dec("2")},      // CRITICAL
		{"INS-ALCOHOL", "Alcohol antiséptico", "litro", 4, dec("1.5"), dec("10")}, // OK
	}
	items := make([]*entity.Item, 0, len(itemDefs))
	for _, d := range itemDefs {
		it := &entity.Item{
			ID:             uuid.New().String(),
			OrganizationID: org.ID,
			Code:           d.code,
			Name:           d.name,
			Unit:           d.unit,
			LeadTimeDays:   d.leadTimeDays,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := itemRepo.Create(it); err != nil {
			fail("crear insumo %s: %v", d.code, err)
		}
		items = append(items, it)
	}

	// 30 días de consumo + conteo actual por (sede, insumo)
	const historyDays = 30
	for _, loc := range locations {
		counts := make([]dto.SnapshotCountItem, 0, len(items))
		for i, it := range items {
			def := itemDefs[i]
			for d := historyDays; d >= 1; d-- {
				usedAt := now.AddDate(0, 0, -d)
				if err := ingestUC.RecordUsage(ctx, org.ID, "", dto.UsageRequest{
					LocationID: loc.ID,
					ItemID:     it.ID,
					Quantity:   def.dailyUse,
					UsedAt:     &usedAt,
				}); err != nil {
					fail("registrar consumo %s/%s: %v", loc.Code, it.Code, err)
				}
			}
			counts = append(counts, dto.SnapshotCountItem{
				ItemID:   it.ID,
				Quantity: def.dailyUse.Mul(def.stockDays),
			})
		}
		if err := ingestUC.RecordSnapshotBatch(ctx, org.ID, "", dto.SnapshotBatchRequest{
			LocationID: loc.ID,
			Counts:     counts,
		}); err != nil {
			fail("registrar conteo de %s: %v", loc.Code, err)
		}
		fmt.Printf("sede %s: %d insumos con %d días de historia\n", loc.Code, len(items), historyDays)
	}

	fmt.Println("seed completado")
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
