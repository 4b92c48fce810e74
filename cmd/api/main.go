package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-salud/internal/application/alerting"
	appanalytics "github.com/jhoicas/inventario-salud/internal/application/analytics"
	"github.com/jhoicas/inventario-salud/internal/application/auth"
	"github.com/jhoicas/inventario-salud/internal/application/ingest"
	appinventory "github.com/jhoicas/inventario-salud/internal/application/inventory"
	"github.com/jhoicas/inventario-salud/internal/application/usecase"
	"github.com/jhoicas/inventario-salud/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/inventario-salud/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-salud/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-salud/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/inventario-salud/internal/interfaces/http"
	"github.com/jhoicas/inventario-salud/pkg/config"
	"github.com/jhoicas/inventario-salud/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	invRepo := postgres.NewInventoryRecordRepository(pool)
	usageRepo := postgres.NewUsageRecordRepository(pool)
	metricsRepo := postgres.NewStockMetricsRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	organizationUC := usecase.NewOrganizationUseCase(orgRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	ingestUC := ingest.NewIngestUseCase(txRunner, invRepo, usageRepo, locationRepo, itemRepo)
	statusUC := appinventory.NewStatusUseCase(metricsRepo, cfg.Inventory.UsageWindowDays)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	procurementUC := appinventory.NewProcurementUseCase(statusUC, orgRepo, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(statusUC, metricsRepo, locationRepo)
	heatmapUC := appanalytics.NewHeatmapUseCase(statusUC, cfg.Inventory.HeatmapMaxDays)

	// Notificador de alertas: nil cuando no hay webhook configurado, en cuyo
	// caso el escaneo solo registra las transiciones.
	var notifier alerting.Notifier
	if cfg.Alerting.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Alerting.WebhookURL)
	}
	alertScanUC := alerting.NewScanUseCase(statusUC, orgRepo, alertRepo, notifier)

	// Scheduler de alertas
	if cfg.Alerting.Enabled {
		sched := scheduler.New(alertScanUC, log, cfg.Alerting.CronSpec)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Str("spec", cfg.Alerting.CronSpec).Msg("iniciar scheduler de alertas")
		}
		defer sched.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Salud API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OrganizationUC: organizationUC,
		LocationUC:     locationUC,
		ItemUC:         itemUC,
		IngestUC:       ingestUC,
		StatusUC:       statusUC,
		ProcurementUC:  procurementUC,
		DashboardUC:    dashboardUC,
		HeatmapUC:      heatmapUC,
		AlertScanUC:    alertScanUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
