package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-salud/internal/application/alerting"
	"github.com/jhoicas/inventario-salud/internal/application/analytics"
	"github.com/jhoicas/inventario-salud/internal/application/auth"
	"github.com/jhoicas/inventario-salud/internal/application/ingest"
	"github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/application/usecase"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OrganizationUC *usecase.OrganizationUseCase
	LocationUC     *usecase.LocationUseCase
	ItemUC         *usecase.ItemUseCase
	IngestUC       *ingest.IngestUseCase
	StatusUC       *inventory.StatusUseCase
	ProcurementUC  *inventory.ProcurementUseCase
	DashboardUC    *analytics.DashboardUseCase
	HeatmapUC      *analytics.HeatmapUseCase
	AlertScanUC    *alerting.ScanUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Roles que pueden escribir en el catálogo y en la ingesta. consulta es
	// solo lectura.
	canManage := RequireRole(entity.RoleAdmin)
	canReport := RequireRole(entity.RoleAdmin, entity.RoleLogistica)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Organizations (público: el alta de una organización precede al primer login)
	organizations := api.Group("/organizations")
	organizationHandler := NewOrganizationHandler(deps.OrganizationUC)
	organizations.Get("/", organizationHandler.List)
	organizations.Post("/", organizationHandler.Create)
	organizations.Get("/:id", organizationHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", canManage, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", canManage, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", canManage, itemHandler.Update)

	// Ingesta de hechos (protegido, append-only)
	invGroup := protected.Group("/inventory")
	ingestHandler := NewIngestHandler(deps.IngestUC)
	invGroup.Post("/snapshots", canReport, ingestHandler.RecordSnapshot)
	invGroup.Post("/snapshots/batch", canReport, ingestHandler.RecordSnapshotBatch)
	invGroup.Post("/usage", canReport, ingestHandler.RecordUsage)

	// Estado de stock derivado (protegido, lectura)
	stock := protected.Group("/stock")
	statusHandler := NewStatusHandler(deps.StatusUC)
	stock.Get("/status", statusHandler.List)

	// Dashboard (protegido, lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.HeatmapUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/heatmap", dashboardHandler.Heatmap)

	// Lista de acción de compras (protegido, lectura + descargas)
	procurement := protected.Group("/procurement")
	procurementHandler := NewProcurementHandler(deps.ProcurementUC)
	procurement.Get("/suggestions", procurementHandler.List)
	procurement.Get("/suggestions.csv", procurementHandler.ExportCSV)
	procurement.Get("/suggestions.pdf", procurementHandler.ExportPDF)

	// Log de alertas (protegido, lectura)
	alertHandler := NewAlertHandler(deps.AlertScanUC)
	protected.Get("/alerts", alertHandler.ListRecent)
}
