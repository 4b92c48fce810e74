package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
)

// HeatmapUseCase arma la grilla sede × insumo coloreada por días de cobertura.
// Puramente presentacional: no muta estado, solo reorganiza el derivado.
type HeatmapUseCase struct {
	statusUC *appinventory.StatusUseCase
	maxDays  int // tope de la escala de color (rojo-amarillo-verde)
}

// NewHeatmapUseCase construye el caso de uso. maxDays <= 0 usa 30 días,
// el dominio de la escala del dashboard original.
func NewHeatmapUseCase(statusUC *appinventory.StatusUseCase, maxDays int) *HeatmapUseCase {
	if maxDays <= 0 {
		maxDays = 30
	}
	return &HeatmapUseCase{statusUC: statusUC, maxDays: maxDays}
}

// GetHeatmap devuelve los ejes ordenados y una celda por (sede, insumo) con datos.
// ScaleValue recorta la cobertura al tope de la escala; la cobertura infinita
// (consumo cero) pinta como el máximo.
func (uc *HeatmapUseCase) GetHeatmap(ctx context.Context, organizationID string) (*dto.HeatmapDTO, error) {
	statuses, err := uc.statusUC.ComputeStatuses(ctx, organizationID, "")
	if err != nil {
		return nil, err
	}

	maxDays := decimal.NewFromInt(int64(uc.maxDays))
	locSet := make(map[string]struct{})
	itemSet := make(map[string]struct{})
	cells := make([]dto.HeatmapCellDTO, 0, len(statuses))

	for _, s := range statuses {
		locSet[s.LocationCode] = struct{}{}
		itemSet[s.ItemName] = struct{}{}

		scale := maxDays
		if s.DaysOfSupply != nil && s.DaysOfSupply.LessThan(maxDays) {
			scale = *s.DaysOfSupply
		}
		cells = append(cells, dto.HeatmapCellDTO{
			LocationCode:    s.LocationCode,
			ItemName:        s.ItemName,
			CurrentQuantity: s.CurrentQuantity,
			DaysRemaining:   s.DaysOfSupply,
			ScaleValue:      scale,
			Status:          s.Status,
		})
	}

	return &dto.HeatmapDTO{
		Locations: sortedKeys(locSet),
		Items:     sortedKeys(itemSet),
		MaxDays:   uc.maxDays,
		Cells:     cells,
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
