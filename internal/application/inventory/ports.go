package inventory

import (
	"context"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
)

// ProcurementPDFGenerator genera el artefacto PDF de la lista de acción de compras.
// La implementación vive en infraestructura (Maroto).
type ProcurementPDFGenerator interface {
	GenerateProcurementPDF(ctx context.Context, orgName string, suggestions []dto.ProcurementSuggestionDTO) ([]byte, error)
}
