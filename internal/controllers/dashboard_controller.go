package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"techhelp-dashboard/internal/dto"
	"techhelp-dashboard/internal/services"
	"techhelp-dashboard/internal/views"
	apperrors "techhelp-dashboard/pkg/errors"
	"techhelp-dashboard/pkg/middleware"
	"techhelp-dashboard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	exportService    *services.ExportService
	defaultTheme     services.Theme
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	exportService *services.ExportService,
	defaultTheme services.Theme,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		exportService:    exportService,
		defaultTheme:     defaultTheme,
		logger:           logger,
	}
}

// ShowDashboard renders the HTML page.
func (ctrl *DashboardController) ShowDashboard(c echo.Context) error {
	logger := middleware.LoggerFrom(c, ctrl.logger)

	var query dto.DashboardQueryDTO
	if err := ctrl.bindQuery(c, &query); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	theme := services.ParseTheme(query.Theme, ctrl.defaultTheme)

	state, ok := ctrl.load(c, logger)
	if !ok {
		return nil
	}

	view := services.BuildDashboardView(state, theme)
	return c.Render(statusFor(state), views.DashboardTemplate, view)
}

// GetDashboard returns the same page model as JSON.
func (ctrl *DashboardController) GetDashboard(c echo.Context) error {
	logger := middleware.LoggerFrom(c, ctrl.logger)

	var query dto.DashboardQueryDTO
	if err := ctrl.bindQuery(c, &query); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}
	theme := services.ParseTheme(query.Theme, ctrl.defaultTheme)

	state, ok := ctrl.load(c, logger)
	if !ok {
		return nil
	}

	view := services.BuildDashboardView(state, theme)
	if state.Phase() != services.PhaseReady {
		httpErr := unavailableError(state)
		httpErr.Details = view
		return utils.ErrorResponse(c, httpErr, logger)
	}
	return utils.SuccessResponse(c, view, "Dashboard carregado com sucesso", http.StatusOK)
}

// ExportDashboard streams the loaded snapshot as an xlsx workbook.
func (ctrl *DashboardController) ExportDashboard(c echo.Context) error {
	logger := middleware.LoggerFrom(c, ctrl.logger)

	var query dto.ExportQueryDTO
	if err := ctrl.bindQuery(c, &query); err != nil {
		return utils.ErrorResponse(c, err, logger)
	}

	state, ok := ctrl.load(c, logger)
	if !ok {
		return nil
	}
	ready, isReady := state.(services.Ready)
	if !isReady {
		return utils.ErrorResponse(c, unavailableError(state), logger)
	}

	fileName := ctrl.exportService.FileName(ready.Snapshot)
	c.Response().Header().Set(echo.HeaderContentType, services.XLSXContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	if err := ctrl.exportService.WriteXLSX(c.Response().Writer, ready.Snapshot); err != nil {
		logger.Error("xlsx export failed", zap.Error(err), zap.String("load_id", ready.Snapshot.LoadID))
		return err
	}
	return nil
}

func (ctrl *DashboardController) bindQuery(c echo.Context, query interface{}) error {
	if err := c.Bind(query); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Parâmetros de consulta inválidos", err, nil)
	}
	return c.Validate(query)
}

// load runs one page load tied to the request. ok is false when the client
// went away before the load finished and nothing should be written.
func (ctrl *DashboardController) load(c echo.Context, logger *zap.Logger) (services.ViewState, bool) {
	view := services.NewDashboardView(ctrl.dashboardService)
	defer view.Dispose()

	state := view.Load(c.Request().Context())
	if state.Phase() == services.PhaseLoading {
		logger.Debug("dashboard load discarded, request context is gone")
		return state, false
	}
	return state, true
}

func statusFor(state services.ViewState) int {
	switch state.Phase() {
	case services.PhaseReady:
		return http.StatusOK
	case services.PhaseTimedOut:
		return http.StatusGatewayTimeout
	default:
		return http.StatusServiceUnavailable
	}
}

func unavailableError(state services.ViewState) *apperrors.HttpError {
	switch st := state.(type) {
	case services.TimedOut:
		return apperrors.NewHttpError(http.StatusGatewayTimeout, services.TimedOutMessage, apperrors.ErrLoadTimedOut, map[string]interface{}{"after": st.After.String()})
	case services.Failed:
		return apperrors.NewHttpError(http.StatusServiceUnavailable, services.FailedMessage, st.Reason, nil)
	default:
		return apperrors.NewHttpError(http.StatusServiceUnavailable, services.FailedMessage, apperrors.ErrDashboardUnavailable, nil)
	}
}
