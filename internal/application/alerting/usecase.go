// Package alerting implementa las "alertas inteligentes": un escaneo periódico
// que detecta transiciones de estado de stock y las notifica a un webhook.
package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-salud/internal/domain/inventory"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// Notification payload de una transición de estado para el webhook.
type Notification struct {
	OrganizationID   string           `json:"organization_id"`
	OrganizationName string           `json:"organization_name"`
	LocationCode     string           `json:"location_code"`
	LocationName     string           `json:"location_name"`
	ItemCode         string           `json:"item_code"`
	ItemName         string           `json:"item_name"`
	PrevStatus       string           `json:"prev_status,omitempty"`
	NewStatus        string           `json:"new_status"`
	DaysOfSupply     *decimal.Decimal `json:"days_of_supply"`
}

// Notifier puerta de salida hacia el canal de notificación (webhook, chat, etc.).
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// ScanResult resumen de una corrida del escaneo.
type ScanResult struct {
	Organizations int
	Transitions   int
	Notified      int
}

// ScanUseCase recorre las organizaciones, recalcula estados y registra cada
// transición en el log de alertas. Las entradas a CRITICAL/WARNING (y las
// recuperaciones desde ellas) se envían al notificador si hay uno configurado.
type ScanUseCase struct {
	statusUC  *appinventory.StatusUseCase
	orgRepo   repository.OrganizationRepository
	alertRepo repository.AlertRepository
	notifier  Notifier // nil = solo registrar, no notificar
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(
	statusUC *appinventory.StatusUseCase,
	orgRepo repository.OrganizationRepository,
	alertRepo repository.AlertRepository,
	notifier Notifier,
) *ScanUseCase {
	return &ScanUseCase{statusUC: statusUC, orgRepo: orgRepo, alertRepo: alertRepo, notifier: notifier}
}

const scanOrgBatch = 500

// ScanAll ejecuta el escaneo sobre todas las organizaciones activas.
func (uc *ScanUseCase) ScanAll(ctx context.Context) (*ScanResult, error) {
	orgs, err := uc.orgRepo.List(scanOrgBatch, 0)
	if err != nil {
		return nil, fmt.Errorf("alert scan: listar organizaciones: %w", err)
	}

	result := &ScanResult{}
	for _, org := range orgs {
		if org.Status != "active" {
			continue
		}
		result.Organizations++
		if err := uc.scanOrganization(ctx, org, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (uc *ScanUseCase) scanOrganization(ctx context.Context, org *entity.Organization, result *ScanResult) error {
	statuses, err := uc.statusUC.ComputeStatuses(ctx, org.ID, "")
	if err != nil {
		return fmt.Errorf("alert scan: estados de %s: %w", org.ID, err)
	}
	lastRows, err := uc.alertRepo.GetLastStatuses(ctx, org.ID)
	if err != nil {
		return fmt.Errorf("alert scan: últimos estados de %s: %w", org.ID, err)
	}

	last := make(map[string]string, len(lastRows))
	for _, row := range lastRows {
		last[row.LocationID+"|"+row.ItemID] = row.Status
	}

	for _, s := range statuses {
		prev := last[s.LocationID+"|"+s.ItemID]
		if s.Status == prev {
			continue
		}
		// Solo interesan transiciones que tocan la zona de acción: entradas a
		// CRITICAL/WARNING y recuperaciones desde ellas. OK inicial no es noticia.
		if !domaininv.NeedsAction(s.Status) && !domaininv.NeedsAction(prev) {
			continue
		}

		alert := &entity.Alert{
			ID:             uuid.New().String(),
			OrganizationID: org.ID,
			LocationID:     s.LocationID,
			ItemID:         s.ItemID,
			PrevStatus:     prev,
			NewStatus:      s.Status,
			DaysOfSupply:   s.DaysOfSupply,
			CreatedAt:      time.Now(),
		}

		if uc.notifier != nil {
			n := Notification{
				OrganizationID:   org.ID,
				OrganizationName: org.Name,
				LocationCode:     s.LocationCode,
				LocationName:     s.LocationName,
				ItemCode:         s.ItemCode,
				ItemName:         s.ItemName,
				PrevStatus:       prev,
				NewStatus:        s.Status,
				DaysOfSupply:     s.DaysOfSupply,
			}
			if err := uc.notifier.Notify(ctx, n); err == nil {
				alert.Notified = true
				result.Notified++
			}
			// Fallo del webhook: la transición se registra igual con Notified=false
			// y el siguiente escaneo no la repite (el estado ya cambió en el log).
		}

		if err := uc.alertRepo.Create(ctx, alert); err != nil {
			return fmt.Errorf("alert scan: registrar transición: %w", err)
		}
		result.Transitions++
	}
	return nil
}

// ListRecent devuelve las últimas transiciones registradas de una organización.
func (uc *ScanUseCase) ListRecent(ctx context.Context, organizationID string, limit int) ([]dto.AlertDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	alerts, err := uc.alertRepo.ListRecent(ctx, organizationID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertDTO{
			ID:           a.ID,
			LocationID:   a.LocationID,
			ItemID:       a.ItemID,
			PrevStatus:   a.PrevStatus,
			NewStatus:    a.NewStatus,
			DaysOfSupply: a.DaysOfSupply,
			Notified:     a.Notified,
			CreatedAt:    a.CreatedAt,
		})
	}
	return out, nil
}
