package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"techhelp-dashboard/internal/listeners"
	"techhelp-dashboard/internal/routes"
	"techhelp-dashboard/pkg/config"
	apperrors "techhelp-dashboard/pkg/errors"
	"techhelp-dashboard/pkg/eventbus"
	applogger "techhelp-dashboard/pkg/logger"
	appmw "techhelp-dashboard/pkg/middleware"
	"techhelp-dashboard/pkg/monitoring"
	"techhelp-dashboard/pkg/utils"
	"techhelp-dashboard/pkg/validation"
)

func main() {
	// 1. Config and logger
	cfg := config.New()
	logger := applogger.NewLogger(cfg)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.InjectLogger(logger))
	e.Use(appmw.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORS.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))
	e.Use(appmw.RateLimiter(cfg.RateLimit, logger))

	monitoring.Init()
	e.Use(monitoring.MetricsMiddleware())

	// 3. Events
	bus := eventbus.New(logger.Named("eventbus"))
	listeners.NewMetricsListener(logger.Named("metrics")).Register(bus)

	// 4. Routes
	if err := routes.InitRouter(e, cfg, bus, logger); err != nil {
		logger.Fatal("failed to initialise routes", zap.Error(err))
	}

	// 5. Server
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("server started", zap.String("addr", addr), zap.String("mode", cfg.Server.Mode))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	bus.Drain()
}
