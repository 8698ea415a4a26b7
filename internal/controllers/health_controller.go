package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"techhelp-dashboard/pkg/utils"
)

type HealthController struct {
	startedAt time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{startedAt: time.Now()}
}

type healthBody struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Health is a liveness probe; it does not touch the data source.
func (ctrl *HealthController) Health(c echo.Context) error {
	body := healthBody{
		Status: "ok",
		Uptime: time.Since(ctrl.startedAt).Truncate(time.Second).String(),
	}
	return utils.SuccessResponse(c, body, "OK", http.StatusOK)
}
