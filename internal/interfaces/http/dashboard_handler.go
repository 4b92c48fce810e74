package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-salud/internal/application/analytics"
	"github.com/jhoicas/inventario-salud/internal/application/dto"
)

// DashboardHandler expone las métricas de cabecera y el heatmap del dashboard.
type DashboardHandler struct {
	summaryUC *analytics.DashboardUseCase
	heatmapUC *analytics.HeatmapUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(summaryUC *analytics.DashboardUseCase, heatmapUC *analytics.HeatmapUseCase) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC, heatmapUC: heatmapUC}
}

// Summary godoc
// @Summary      Métricas de cabecera del dashboard
// @Description  Sedes activas y conteo de insumos por estado.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.summaryUC.GetSummary(c.Context(), organizationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Heatmap godoc
// @Summary      Heatmap sede × insumo
// @Description  Grilla de cobertura en días; cada celda trae los datos del tooltip.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HeatmapDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/heatmap [get]
func (h *DashboardHandler) Heatmap(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.heatmapUC.GetHeatmap(c.Context(), organizationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
