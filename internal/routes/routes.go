package routes

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"techhelp-dashboard/internal/repositories"
	"techhelp-dashboard/internal/services"
	"techhelp-dashboard/internal/views"
	"techhelp-dashboard/pkg/config"
	"techhelp-dashboard/pkg/eventbus"
	"techhelp-dashboard/pkg/filestorage"
	"techhelp-dashboard/pkg/monitoring"
	"techhelp-dashboard/pkg/validation"
)

// InitRouter wires repositories, services and controllers onto e.
// bus may be nil.
func InitRouter(e *echo.Echo, cfg *config.Config, bus *eventbus.Bus, logger *zap.Logger) error {
	logger.Info("InitRouter: creating routes")

	if e.Validator == nil {
		e.Validator = validation.New()
	}
	if e.Renderer == nil {
		renderer, err := views.NewTemplateRenderer()
		if err != nil {
			return err
		}
		e.Renderer = renderer
	}

	// --- 1. Repositories ---
	var (
		resourceRepo repositories.ResourceRepositoryInterface
		storage      filestorage.FileStorageInterface
	)
	if cfg.UsesDirectory() {
		var err error
		storage, err = filestorage.NewLocalFileStorage(cfg.Source.Dir)
		if err != nil {
			return fmt.Errorf("dashboard source directory: %w", err)
		}
		resourceRepo = repositories.NewFileResourceRepository(storage)
		logger.Info("dashboard documents are read from a directory", zap.String("dir", cfg.Source.Dir))
	} else {
		resourceRepo = repositories.NewHTTPResourceRepository(cfg.Source.BaseURL, &http.Client{}, logger.Named("resources"))
		logger.Info("dashboard documents are fetched over HTTP", zap.String("base_url", cfg.Source.BaseURL))
	}

	// --- 2. Services ---
	dashboardService := services.NewDashboardService(resourceRepo, bus, cfg.Dashboard.FetchTimeout, logger.Named("dashboard"))
	exportService := services.NewExportService()
	defaultTheme := services.ParseTheme(cfg.Dashboard.DefaultTheme, services.DefaultTheme)

	// --- 3. Routers ---
	runHealthRouter(e)
	runDashboardRouter(e, dashboardService, exportService, defaultTheme, logger)
	if storage != nil {
		runResourceRouter(e, storage)
	}
	e.GET("/metrics", monitoring.PrometheusHandler())

	logger.Info("InitRouter: routes created")
	return nil
}
