package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/domain"
	domaininv "github.com/jhoicas/inventario-salud/internal/domain/inventory"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// csvHeader columnas del artefacto descargable urgent_reorder_list.csv.
var csvHeader = []string{
	"location_code", "location_name", "item_code", "item_name", "unit",
	"status", "current_quantity", "days_of_supply", "suggested_order_qty",
}

// ProcurementUseCase genera la lista de acción de compras: los (sede, insumo)
// en CRITICAL o WARNING con su cantidad sugerida de pedido, priorizados por
// menor cobertura primero.
type ProcurementUseCase struct {
	statusUC *StatusUseCase
	orgRepo  repository.OrganizationRepository
	pdfGen   ProcurementPDFGenerator
}

// NewProcurementUseCase construye el caso de uso. pdfGen puede ser nil si el
// despliegue no expone la descarga en PDF.
func NewProcurementUseCase(statusUC *StatusUseCase, orgRepo repository.OrganizationRepository, pdfGen ProcurementPDFGenerator) *ProcurementUseCase {
	return &ProcurementUseCase{statusUC: statusUC, orgRepo: orgRepo, pdfGen: pdfGen}
}

// GenerateList devuelve las sugerencias de pedido ordenadas por urgencia:
// menor cobertura primero; a igual cobertura, mayor déficit absoluto.
// Cantidad sugerida = tasa × lead time − stock actual, con piso en cero.
func (uc *ProcurementUseCase) GenerateList(ctx context.Context, organizationID, locationID string) ([]dto.ProcurementSuggestionDTO, error) {
	statuses, err := uc.statusUC.ComputeStatuses(ctx, organizationID, locationID)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ProcurementSuggestionDTO, 0, len(statuses))
	for _, s := range statuses {
		if !domaininv.NeedsAction(s.Status) {
			continue
		}
		lead := decimal.NewFromInt(int64(s.LeadTimeDays))
		suggested := domaininv.SuggestedReorderQty(s.CurrentQuantity, s.DailyUsageRate, lead)
		suggestions = append(suggestions, dto.ProcurementSuggestionDTO{
			LocationID:        s.LocationID,
			LocationCode:      s.LocationCode,
			LocationName:      s.LocationName,
			ItemID:            s.ItemID,
			ItemCode:          s.ItemCode,
			ItemName:          s.ItemName,
			Unit:              s.Unit,
			Status:            s.Status,
			CurrentQuantity:   s.CurrentQuantity,
			DailyUsageRate:    s.DailyUsageRate,
			LeadTimeDays:      s.LeadTimeDays,
			DaysOfSupply:      s.DaysOfSupply,
			SuggestedOrderQty: suggested,
		})
	}

	// Ordenar: menor cobertura primero; a igual cobertura, mayor déficit sugerido.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.DaysOfSupply != nil && b.DaysOfSupply != nil && !a.DaysOfSupply.Equal(*b.DaysOfSupply) {
			return a.DaysOfSupply.LessThan(*b.DaysOfSupply)
		}
		return a.SuggestedOrderQty.GreaterThan(b.SuggestedOrderQty)
	})

	// Asignar prioridad (1 = más urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}

	return suggestions, nil
}

// ExportCSV serializa la lista de acción como CSV descargable (urgent_reorder_list.csv).
func (uc *ProcurementUseCase) ExportCSV(ctx context.Context, organizationID, locationID string) ([]byte, error) {
	suggestions, err := uc.GenerateList(ctx, organizationID, locationID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("procurement: escribir encabezado CSV: %w", err)
	}
	for _, s := range suggestions {
		days := "" // cobertura infinita no aplica en la lista de acción, pero el formato lo tolera
		if s.DaysOfSupply != nil {
			days = s.DaysOfSupply.Round(1).String()
		}
		record := []string{
			s.LocationCode, s.LocationName, s.ItemCode, s.ItemName, s.Unit,
			s.Status, s.CurrentQuantity.String(), days, s.SuggestedOrderQty.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("procurement: escribir fila CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("procurement: volcar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF genera el artefacto PDF de la lista de acción vía Maroto.
func (uc *ProcurementUseCase) ExportPDF(ctx context.Context, organizationID, locationID string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrConflict
	}
	suggestions, err := uc.GenerateList(ctx, organizationID, locationID)
	if err != nil {
		return nil, err
	}
	orgName := ""
	if org, err := uc.orgRepo.GetByID(organizationID); err == nil && org != nil {
		orgName = org.Name
	}
	return uc.pdfGen.GenerateProcurementPDF(ctx, orgName, suggestions)
}
