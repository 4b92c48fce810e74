package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/application/inventory"
)

// ProcurementHandler expone la Lista de Acción de Compras en JSON y como
// artefactos descargables (CSV y PDF).
type ProcurementHandler struct {
	uc *inventory.ProcurementUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *inventory.ProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// List godoc
// @Summary      Lista de acción de compras
// @Description  Insumos en CRITICAL o WARNING con cantidad sugerida de pedido,
// @Description  ordenados por urgencia (menor cobertura primero).
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por sede"
// @Success      200  {array}   dto.ProcurementSuggestionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/procurement/suggestions [get]
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.uc.GenerateList(c.Context(), organizationID, c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Descargar lista de compras en CSV
// @Tags         procurement
// @Security     Bearer
// @Produce      text/csv
// @Param        location_id  query  string  false  "Filtrar por sede"
// @Success      200  {string}  string  "CSV"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/procurement/suggestions.csv [get]
func (h *ProcurementHandler) ExportCSV(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	data, err := h.uc.ExportCSV(c.Context(), organizationID, c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="urgent_reorder_list.csv"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Descargar lista de compras en PDF
// @Tags         procurement
// @Security     Bearer
// @Produce      application/pdf
// @Param        location_id  query  string  false  "Filtrar por sede"
// @Success      200  {string}  string  "PDF"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/procurement/suggestions.pdf [get]
func (h *ProcurementHandler) ExportPDF(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	data, err := h.uc.ExportPDF(c.Context(), organizationID, c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="urgent_reorder_list.pdf"`)
	return c.Send(data)
}
