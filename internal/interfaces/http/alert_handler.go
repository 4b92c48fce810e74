package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-salud/internal/application/alerting"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
)

// AlertHandler expone el log de transiciones de estado.
type AlertHandler struct {
	uc *alerting.ScanUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerting.ScanUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// ListRecent godoc
// @Summary      Últimas transiciones de estado
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200  {array}   dto.AlertDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) ListRecent(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	limit := c.QueryInt("limit", 50)
	out, err := h.uc.ListRecent(c.Context(), organizationID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
