package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/application/inventory"
)

// StatusHandler expone el estado de stock derivado por (sede, insumo).
type StatusHandler struct {
	uc *inventory.StatusUseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *inventory.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// List godoc
// @Summary      Estado de stock por sede e insumo
// @Description  Calcula cobertura (días) y clasificación CRITICAL/WARNING/OK a
// @Description  partir del último conteo y la tasa de consumo de la ventana.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por sede"
// @Success      200  {array}   dto.StockStatusDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	locationID := c.Query("location_id")
	out, err := h.uc.ComputeStatuses(c.Context(), organizationID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
