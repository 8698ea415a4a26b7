package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"techhelp-dashboard/internal/controllers"
	"techhelp-dashboard/internal/entities"
	"techhelp-dashboard/internal/services"
	"techhelp-dashboard/pkg/filestorage"
)

func runDashboardRouter(
	e *echo.Echo,
	dashboardService services.DashboardServiceInterface,
	exportService *services.ExportService,
	defaultTheme services.Theme,
	logger *zap.Logger,
) {
	dashboardController := controllers.NewDashboardController(dashboardService, exportService, defaultTheme, logger)

	e.GET("/", dashboardController.ShowDashboard)

	api := e.Group("/api")
	api.GET("/dashboard", dashboardController.GetDashboard)
	api.GET("/dashboard/export", dashboardController.ExportDashboard)
}

func runHealthRouter(e *echo.Echo) {
	healthController := controllers.NewHealthController()
	e.GET("/health", healthController.Health)
}

// runResourceRouter serves the raw documents at their fixed paths.
func runResourceRouter(e *echo.Echo, storage filestorage.FileStorageInterface) {
	for _, name := range entities.AllResources {
		name := string(name)
		e.GET("/"+name, func(c echo.Context) error {
			path, err := storage.Path(name)
			if err != nil {
				return echo.ErrNotFound
			}
			return c.File(path)
		})
	}
}
